// Copyright (c) 2024 The netsched Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package connmgr

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/atomic"
	"github.com/uber-go/tally"

	"github.com/netsched/netsched/pkg/common"
	"github.com/netsched/netsched/pkg/common/background"
	"github.com/netsched/netsched/pkg/connmgr/job"
	"github.com/netsched/netsched/pkg/connmgr/network"
	"github.com/netsched/netsched/pkg/connmgr/satisfier"
)

const (
	_rebalanceWorkName  = "connectivity-rebalance"
	_reevaluateWorkName = "connectivity-reevaluate"
)

// Controller is the connectivity constraint controller: it decides, for
// every queued job requiring network access, whether a currently available
// network satisfies that job's requirement, and manages the capped pool of
// per-owner default-network observers.
type Controller interface {
	// Start registers the general network observer and starts the deferred
	// rebalance and periodic reevaluation works.
	Start() error

	// Stop stops background works and drops all registrations.
	Stop() error

	// StartTracking begins tracking a job that requires network, on job
	// creation or requirement change, and evaluates it immediately.
	StartTracking(j *job.Status)

	// StopTracking stops tracking a job, revoking any held standby
	// exception.
	StopTracking(j *job.Status)

	// PrepareForExecution marks the job running right before dispatch.
	// Running expedited jobs bypass policy firewalls, so an unsatisfied
	// expedited job may become satisfied here.
	PrepareForExecution(j *job.Status)

	// FinishExecution marks the job no longer running.
	FinishExecution(j *job.Status)

	// Evaluate recomputes the job's satisfied bit and returns it.
	Evaluate(j *job.Status) bool

	// OnNetworkAvailable reports a newly available network and its
	// capabilities.
	OnNetworkAvailable(n *network.Descriptor, caps *network.CapabilitySnapshot)

	// OnNetworkCapabilitiesChanged reports new capabilities for a known
	// network.
	OnNetworkCapabilitiesChanged(n *network.Descriptor, caps *network.CapabilitySnapshot)

	// OnNetworkLost reports that a network has gone away.
	OnNetworkLost(n *network.Descriptor)

	// OnDefaultNetworkChanged reports a change of one owner's default
	// network along with the policy-block reasons applying to it.
	OnDefaultNetworkChanged(ownerID uint32, n *network.Descriptor, blockedReasons uint32)

	// OnSignalStrengthChanged reports a new signal level for a cellular
	// subscription.
	OnSignalStrengthChanged(subscriptionID int32, level network.SignalLevel)

	// OnOwnerImportanceChanged reports a change of an owner's process
	// importance.
	OnOwnerImportanceChanged(ownerID uint32, importance Importance)

	// OnOwnerRemoved reports that an owner was removed from the device.
	OnOwnerRemoved(ownerID uint32)

	// Dump returns a diagnostic snapshot of the controller state.
	Dump() *Snapshot
}

// controller implements Controller. A single coarse lock protects all maps;
// the controller never blocks while holding it and all external collaborator
// calls are fire-and-forget.
type controller struct {
	mu sync.Mutex

	config  *Config
	metrics *Metrics

	store    JobStore
	engine   ExecutionEngine
	provider NetworkProvider
	policy   PowerPolicy

	// owners holds per-owner stats; an entry exists iff the owner has at
	// least one tracked job or a registered observer.
	owners map[uint32]*ownerStats

	// networks maps available networks to their latest capability
	// snapshot.
	networks map[*network.Descriptor]*network.CapabilitySnapshot

	budget  *budgetManager
	standby *standbyTracker
	signals *signalCache

	generalRegistration Registration

	bg background.Manager

	lastRebalance    time.Time
	rebalancePending bool
}

// NewController creates the connectivity controller.
func NewController(
	parent tally.Scope,
	config *Config,
	store JobStore,
	engine ExecutionEngine,
	provider NetworkProvider,
	policy PowerPolicy,
	telephony Telephony,
) (Controller, error) {
	config.normalize()
	scope := parent.SubScope(common.ConnectivityManager)
	metrics := NewMetrics(scope)

	c := &controller{
		config:   config,
		metrics:  metrics,
		store:    store,
		engine:   engine,
		provider: provider,
		policy:   policy,
		owners:   make(map[uint32]*ownerStats),
		networks: make(map[*network.Descriptor]*network.CapabilitySnapshot),
		budget:   newBudgetManager(config.MaxCallbacks, provider, metrics),
		standby:  newStandbyTracker(policy, metrics),
		signals:  newSignalCache(telephony, metrics),
		bg:       background.NewManager(),
	}

	err := c.bg.RegisterWorks(
		background.Work{
			Name:   _rebalanceWorkName,
			Func:   c.runDeferredRebalance,
			Period: config.RebalanceMinInterval,
		},
		background.Work{
			Name:         _reevaluateWorkName,
			Func:         c.runPeriodicReevaluation,
			Period:       config.EvaluationPeriod,
			InitialDelay: config.EvaluationPeriod,
		},
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Start registers the general network observer and starts background works.
func (c *controller) Start() error {
	registration, err := c.provider.RegisterNetworkObserver()
	if err != nil {
		return errors.Wrap(err, "unable to register general network observer")
	}

	c.mu.Lock()
	c.generalRegistration = registration
	c.mu.Unlock()

	c.bg.Start()
	log.Info("Connectivity controller started")
	return nil
}

// Stop stops background works and drops every registration.
func (c *controller) Stop() error {
	c.bg.Stop()

	c.mu.Lock()
	if c.generalRegistration != nil {
		c.generalRegistration.Unregister()
		c.generalRegistration = nil
	}
	c.budget.unregisterAll()
	c.signals.unregisterAll()
	c.mu.Unlock()

	log.Info("Connectivity controller stopped")
	return nil
}

// StartTracking begins tracking a job requiring network and evaluates it
// immediately.
func (c *controller) StartTracking(j *job.Status) {
	if !j.RequiresNetwork() {
		return
	}
	now := time.Now()

	c.mu.Lock()
	j.Tracked = true
	stats := c.getOrCreateOwnerStatsLocked(j.OwnerID)
	changed := c.evaluateJobLocked(j, now)
	c.refreshOwnerStatsLocked(stats, now, true)
	rebalanced := c.maybeRebalanceLocked(now)
	c.updateGaugesLocked()
	c.mu.Unlock()

	log.WithFields(log.Fields{
		"job_id":   j.ID,
		"owner_id": j.OwnerID,
	}).Debug("Started tracking job")

	if changed {
		rebalanced = append(rebalanced, j)
	}
	c.report(rebalanced, nil)
}

// StopTracking stops tracking the job and cleans up per-owner state. The
// owner's stats entry is destroyed once its last job stops being tracked,
// dropping the observer first.
func (c *controller) StopTracking(j *job.Status) {
	now := time.Now()

	c.mu.Lock()
	if !j.Tracked {
		c.mu.Unlock()
		return
	}
	j.Tracked = false
	j.Running = false
	j.SatisfiedBit = false
	j.BoundNetwork = nil

	c.standby.maybeRevoke(j)

	stats := c.expectOwnerStatsLocked(j.OwnerID)
	c.refreshOwnerStatsLocked(stats, now, true)
	if stats.numTracked == 0 {
		// Drop the callback before destroying the stats entry.
		c.budget.unregister(j.OwnerID)
		delete(c.owners, j.OwnerID)
	}
	rebalanced := c.maybeRebalanceLocked(now)
	c.updateGaugesLocked()
	c.mu.Unlock()

	log.WithFields(log.Fields{
		"job_id":   j.ID,
		"owner_id": j.OwnerID,
	}).Debug("Stopped tracking job")

	c.report(rebalanced, nil)
}

// PrepareForExecution marks the job running. Restricted owners get a
// standby exception for the duration of the run, and running expedited jobs
// are satisfied as long as their owner still has a default network.
func (c *controller) PrepareForExecution(j *job.Status) {
	now := time.Now()

	c.mu.Lock()
	if !j.Tracked {
		c.mu.Unlock()
		return
	}
	j.Running = true
	if c.policy.IsOwnerRestricted(j.OwnerID) {
		c.standby.request(j)
	}
	changed := false
	if j.Expedited && !j.SatisfiedBit {
		changed = c.evaluateJobLocked(j, now)
	}
	stats := c.expectOwnerStatsLocked(j.OwnerID)
	c.refreshOwnerStatsLocked(stats, now, true)
	c.mu.Unlock()

	if changed {
		c.report([]*job.Status{j}, nil)
	}
}

// FinishExecution marks the job no longer running and reevaluates it, since
// the expedited firewall bypass ends with the run.
func (c *controller) FinishExecution(j *job.Status) {
	now := time.Now()

	c.mu.Lock()
	j.Running = false
	c.standby.maybeRevoke(j)
	changed := c.evaluateJobLocked(j, now)
	if stats, ok := c.owners[j.OwnerID]; ok {
		c.refreshOwnerStatsLocked(stats, now, true)
	}
	c.mu.Unlock()

	if changed {
		c.report([]*job.Status{j}, nil)
	}
}

// Evaluate recomputes the job's satisfied bit and returns it.
func (c *controller) Evaluate(j *job.Status) bool {
	now := time.Now()

	c.mu.Lock()
	changed := c.evaluateJobLocked(j, now)
	satisfied := j.SatisfiedBit
	c.mu.Unlock()

	if changed {
		c.report([]*job.Status{j}, nil)
	}
	return satisfied
}

// OnNetworkAvailable reports a newly available network.
func (c *controller) OnNetworkAvailable(
	n *network.Descriptor,
	caps *network.CapabilitySnapshot,
) {
	c.process(event{
		kind:         eventNetworkAvailable,
		network:      n,
		capabilities: caps,
	})
}

// OnNetworkCapabilitiesChanged reports changed capabilities of a network.
func (c *controller) OnNetworkCapabilitiesChanged(
	n *network.Descriptor,
	caps *network.CapabilitySnapshot,
) {
	c.process(event{
		kind:         eventNetworkCapabilitiesChanged,
		network:      n,
		capabilities: caps,
	})
}

// OnNetworkLost reports that a network has gone away.
func (c *controller) OnNetworkLost(n *network.Descriptor) {
	c.process(event{
		kind:    eventNetworkLost,
		network: n,
	})
}

// OnDefaultNetworkChanged reports one owner's new default network.
func (c *controller) OnDefaultNetworkChanged(
	ownerID uint32,
	n *network.Descriptor,
	blockedReasons uint32,
) {
	c.process(event{
		kind:           eventDefaultNetworkChanged,
		ownerID:        ownerID,
		network:        n,
		blockedReasons: blockedReasons,
	})
}

// OnSignalStrengthChanged reports a new signal level for a subscription.
func (c *controller) OnSignalStrengthChanged(
	subscriptionID int32,
	level network.SignalLevel,
) {
	c.process(event{
		kind:           eventSignalStrengthChanged,
		subscriptionID: subscriptionID,
		signalLevel:    level,
	})
}

// OnOwnerImportanceChanged reports an owner importance change.
func (c *controller) OnOwnerImportanceChanged(ownerID uint32, importance Importance) {
	c.process(event{
		kind:       eventOwnerImportanceChanged,
		ownerID:    ownerID,
		importance: importance,
	})
}

// OnOwnerRemoved reports that an owner was removed from the device.
func (c *controller) OnOwnerRemoved(ownerID uint32) {
	c.process(event{
		kind:    eventOwnerRemoved,
		ownerID: ownerID,
	})
}

// process is the single entry point for asynchronous events. Each event
// variant maps 1:1 to a handler method; all handlers run under the
// controller lock and return the union of changed jobs, reported upward
// after the lock is released.
func (c *controller) process(ev event) {
	now := time.Now()

	c.mu.Lock()
	var changed, runNow []*job.Status
	switch ev.kind {
	case eventNetworkAvailable:
		changed, runNow = c.handleNetworkAvailableLocked(ev, now)
	case eventNetworkCapabilitiesChanged:
		changed = c.handleNetworkCapabilitiesChangedLocked(ev, now)
	case eventNetworkLost:
		changed = c.handleNetworkLostLocked(ev, now)
	case eventDefaultNetworkChanged:
		changed = c.handleDefaultNetworkChangedLocked(ev, now)
	case eventSignalStrengthChanged:
		changed = c.handleSignalStrengthChangedLocked(ev, now)
	case eventOwnerImportanceChanged:
		changed = c.handleOwnerImportanceChangedLocked(ev, now)
	case eventOwnerRemoved:
		changed = c.handleOwnerRemovedLocked(ev, now)
	default:
		log.WithField("event", ev.kind).Error("Unknown event type")
	}
	c.updateGaugesLocked()
	c.mu.Unlock()

	c.report(changed, runNow)
}

func (c *controller) handleNetworkAvailableLocked(
	ev event,
	now time.Time,
) (changed []*job.Status, runNow []*job.Status) {
	c.networks[ev.network] = ev.capabilities
	c.signals.retain(ev.capabilities.SubscriptionIDs())

	log.WithFields(log.Fields{
		"network":      ev.network.String(),
		"capabilities": ev.capabilities.String(),
	}).Debug("Network available")

	changed = c.reevaluateAffectedLocked(ev.network, now)
	for _, j := range changed {
		// Nudge newly satisfied expedited work past its scheduling delay.
		if j.SatisfiedBit && j.Expedited && !j.Running {
			runNow = append(runNow, j)
		}
	}
	changed = append(changed, c.maybeRebalanceLocked(now)...)
	return changed, runNow
}

func (c *controller) handleNetworkCapabilitiesChangedLocked(
	ev event,
	now time.Time,
) []*job.Status {
	// Retain the new subscriptions before releasing the old ones so a
	// subscription common to both keeps its registration.
	c.signals.retain(ev.capabilities.SubscriptionIDs())
	if old, ok := c.networks[ev.network]; ok {
		c.signals.release(old.SubscriptionIDs())
	}
	c.networks[ev.network] = ev.capabilities

	return c.reevaluateAffectedLocked(ev.network, now)
}

func (c *controller) handleNetworkLostLocked(ev event, now time.Time) []*job.Status {
	if caps, ok := c.networks[ev.network]; ok {
		c.signals.release(caps.SubscriptionIDs())
		delete(c.networks, ev.network)
	}
	c.budget.clearDefault(ev.network)

	log.WithField("network", ev.network.String()).Debug("Network lost")

	changed := c.reevaluateAffectedLocked(ev.network, now)
	changed = append(changed, c.maybeRebalanceLocked(now)...)
	return changed
}

func (c *controller) handleDefaultNetworkChangedLocked(
	ev event,
	now time.Time,
) []*job.Status {
	if !c.budget.updateDefault(ev.ownerID, ev.network, ev.blockedReasons) {
		// The report raced an eviction; the registration is gone.
		log.WithField("owner_id", ev.ownerID).
			Debug("Default network report for unregistered owner, dropping")
		return nil
	}

	var changed []*job.Status
	for _, j := range c.store.GetJobsByOwner(ev.ownerID) {
		if !j.Tracked {
			continue
		}
		if c.evaluateJobLocked(j, now) {
			changed = append(changed, j)
		}
	}
	return changed
}

func (c *controller) handleSignalStrengthChangedLocked(
	ev event,
	now time.Time,
) []*job.Status {
	if !c.signals.update(ev.subscriptionID, ev.signalLevel) {
		return nil
	}

	var changed []*job.Status
	for n, caps := range c.networks {
		if !referencesSubscription(caps, ev.subscriptionID) {
			continue
		}
		changed = append(changed, c.reevaluateAffectedLocked(n, now)...)
	}
	return changed
}

func (c *controller) handleOwnerImportanceChangedLocked(
	ev event,
	now time.Time,
) []*job.Status {
	stats, ok := c.owners[ev.ownerID]
	if !ok {
		return nil
	}
	stats.importance = ev.importance
	stats.computeRankKeys()
	// Importance affects ranking, not direct satisfaction.
	return c.maybeRebalanceLocked(now)
}

func (c *controller) handleOwnerRemovedLocked(ev event, now time.Time) []*job.Status {
	for _, j := range c.store.GetJobsByOwner(ev.ownerID) {
		if !j.Tracked {
			continue
		}
		j.Tracked = false
		j.Running = false
		j.SatisfiedBit = false
		j.BoundNetwork = nil
	}
	c.standby.revokeOwner(ev.ownerID)
	c.budget.unregister(ev.ownerID)
	delete(c.owners, ev.ownerID)

	log.WithField("owner_id", ev.ownerID).Debug("Owner removed")

	return c.maybeRebalanceLocked(now)
}

// reevaluateAffectedLocked reevaluates every tracked job whose owner's
// reported default network matches the changed network, whose bound network
// matches it, or whose bound network no longer matches what the per-owner
// observer reports. The mismatch rule catches default-network transitions
// that never produce a direct network match.
func (c *controller) reevaluateAffectedLocked(
	n *network.Descriptor,
	now time.Time,
) []*job.Status {
	var changed []*job.Status
	for ownerID := range c.owners {
		var ownerDefault *network.Descriptor
		if obs := c.budget.observer(ownerID); obs != nil {
			ownerDefault = obs.defaultNetwork
		}
		for _, j := range c.store.GetJobsByOwner(ownerID) {
			if !j.Tracked {
				continue
			}
			if ownerDefault != n && j.BoundNetwork != n &&
				j.BoundNetwork == ownerDefault {
				continue
			}
			if c.evaluateJobLocked(j, now) {
				changed = append(changed, j)
			}
		}
	}
	return changed
}

// evaluateJobLocked recomputes the job's satisfied bit and bound network.
// Returns whether either changed. Transient unavailability (no observer, no
// default network, no capabilities) resolves to "not satisfied", never an
// error.
func (c *controller) evaluateJobLocked(j *job.Status, now time.Time) bool {
	if !j.Tracked || !j.RequiresNetwork() {
		return false
	}
	c.metrics.Evaluations.Inc(1)

	satisfied := false
	var bound *network.Descriptor

	obs := c.ensureObserverLocked(j.OwnerID)
	if obs != nil && obs.defaultNetwork != nil {
		n := obs.defaultNetwork
		caps := c.capabilitiesLocked(n)
		if caps != nil && obs.blockedReasons == 0 {
			params := c.evaluationParamsLocked(j, n, caps, now)
			satisfied = satisfier.IsSatisfied(j, caps, params, c.config.constants())
		}
		// Elevated execution bypasses the policy firewall directly, so a
		// running expedited job stays satisfied while its owner still has
		// a live default network.
		if !satisfied && j.Expedited && j.Running && caps != nil {
			satisfied = true
		}
		if satisfied {
			bound = n
		}
	}

	changed := j.SatisfiedBit != satisfied || j.BoundNetwork != bound
	j.SatisfiedBit = satisfied
	j.BoundNetwork = bound
	if changed {
		if satisfied {
			c.metrics.SatisfiedTransitions.Inc(1)
		} else {
			c.metrics.UnsatisfiedTransition.Inc(1)
		}
		log.WithFields(log.Fields{
			"job_id":    j.ID,
			"owner_id":  j.OwnerID,
			"satisfied": satisfied,
		}).Debug("Connectivity constraint changed")
	}
	return changed
}

// ensureObserverLocked returns the owner's default-network observer,
// registering one if the budget allows. A nil return means visibility is
// currently unavailable; registration has been deferred to the next
// rebalance.
func (c *controller) ensureObserverLocked(ownerID uint32) *defaultNetworkObserver {
	obs, err := c.budget.ensureRegistered(ownerID)
	if err != nil {
		log.WithField("owner_id", ownerID).
			WithError(err).
			Error("Default network observer registration failed")
		return nil
	}
	if obs == nil {
		// Budget exhausted; pick it up on the next rebalance pass.
		if !c.rebalancePending {
			c.rebalancePending = true
			c.metrics.RebalanceDeferred.Inc(1)
		}
	}
	return obs
}

// capabilitiesLocked resolves the capability snapshot for a network,
// preferring the available-networks map and falling back to a provider
// query for networks the general observer has not reported yet.
func (c *controller) capabilitiesLocked(n *network.Descriptor) *network.CapabilitySnapshot {
	if caps, ok := c.networks[n]; ok {
		return caps
	}
	return c.provider.Capabilities(n)
}

func (c *controller) evaluationParamsLocked(
	j *job.Status,
	n *network.Descriptor,
	caps *network.CapabilitySnapshot,
	now time.Time,
) satisfier.Params {
	p := satisfier.Params{
		Now:             now,
		Device:          c.policy.DeviceState(),
		SignalLevel:     c.signals.best(caps.SubscriptionIDs()),
		OwnerRestricted: c.policy.IsOwnerRestricted(j.OwnerID),
	}
	if j.Prefetch {
		p.OpportunisticQuotaBytes = c.provider.OpportunisticQuotaBytes(n, j.OwnerID)
	}
	return p
}

// maybeRebalanceLocked runs a rebalance pass unless one ran within the
// configured minimum interval; early requests are coalesced into a single
// deferred pass at the interval boundary.
func (c *controller) maybeRebalanceLocked(now time.Time) []*job.Status {
	if now.Sub(c.lastRebalance) < c.config.RebalanceMinInterval {
		if !c.rebalancePending {
			c.rebalancePending = true
			c.metrics.RebalanceDeferred.Inc(1)
		}
		return nil
	}
	return c.rebalanceLocked(now)
}

// rebalanceLocked converges the observer set toward the top-N ranked
// owners. Owners falling outside the top N lose their observer, and their
// jobs are conservatively downgraded to unsatisfied before the changed set
// is reported upward.
func (c *controller) rebalanceLocked(now time.Time) []*job.Status {
	sw := c.metrics.RebalanceDuration.Start()
	defer sw.Stop()

	c.lastRebalance = now
	c.rebalancePending = false
	c.metrics.Rebalances.Inc(1)

	ranked := make([]*ownerStats, 0, len(c.owners))
	for _, stats := range c.owners {
		c.refreshOwnerStatsLocked(stats, now, false)
		if stats.numTracked > 0 {
			ranked = append(ranked, stats)
		}
	}
	sortOwners(ranked)

	evicted, err := c.budget.converge(ranked)
	if err != nil {
		log.WithError(err).Error("Callback budget convergence failed")
	}

	var changed []*job.Status
	for _, ownerID := range evicted {
		for _, j := range c.store.GetJobsByOwner(ownerID) {
			if !j.Tracked {
				continue
			}
			// Loss of visibility resolves conservatively.
			if j.SatisfiedBit || j.BoundNetwork != nil {
				j.SatisfiedBit = false
				j.BoundNetwork = nil
				c.metrics.UnsatisfiedTransition.Inc(1)
				changed = append(changed, j)
			}
		}
	}
	return changed
}

// refreshOwnerStatsLocked recomputes the owner's counts unless they were
// refreshed within the stats-update interval. force bypasses the throttle
// on job lifecycle transitions.
func (c *controller) refreshOwnerStatsLocked(stats *ownerStats, now time.Time, force bool) {
	if !force && now.Sub(stats.lastUpdated) < c.config.StatsUpdateMinInterval {
		return
	}
	stats.refresh(
		c.store.GetJobsByOwner(stats.ownerID),
		c.networks,
		c.policy.OwnerImportance(stats.ownerID),
		now,
	)
}

func (c *controller) getOrCreateOwnerStatsLocked(ownerID uint32) *ownerStats {
	stats, ok := c.owners[ownerID]
	if !ok {
		stats = newOwnerStats(ownerID)
		stats.importance = c.policy.OwnerImportance(ownerID)
		c.owners[ownerID] = stats
	}
	return stats
}

// expectOwnerStatsLocked returns the owner's stats which the caller expects
// to exist already. A missing entry is an invariant violation: logged
// loudly and tolerated by synthesizing the missing state.
func (c *controller) expectOwnerStatsLocked(ownerID uint32) *ownerStats {
	stats, ok := c.owners[ownerID]
	if !ok {
		log.WithField("owner_id", ownerID).
			Error("Owner stats missing for tracked job, synthesizing")
		stats = newOwnerStats(ownerID)
		c.owners[ownerID] = stats
	}
	return stats
}

func (c *controller) updateGaugesLocked() {
	tracked := 0
	for _, stats := range c.owners {
		tracked += stats.numTracked
	}
	c.metrics.TrackedJobs.Update(float64(tracked))
	c.metrics.TrackedOwners.Update(float64(len(c.owners)))
	c.metrics.AvailableNetworks.Update(float64(len(c.networks)))
}

// report notifies the execution engine of constraint changes and run-now
// nudges. Called without the controller lock; both calls are
// fire-and-forget from the controller's point of view.
func (c *controller) report(changed []*job.Status, runNow []*job.Status) {
	if len(changed) > 0 {
		c.engine.OnControllerStateChanged(changed)
	}
	for _, j := range runNow {
		c.engine.OnRunJobNow(j)
	}
}

func (c *controller) runDeferredRebalance(_ *atomic.Bool) {
	now := time.Now()

	c.mu.Lock()
	var changed []*job.Status
	if c.rebalancePending {
		changed = c.rebalanceLocked(now)
	}
	c.mu.Unlock()

	c.report(changed, nil)
}

func (c *controller) runPeriodicReevaluation(_ *atomic.Bool) {
	now := time.Now()

	c.mu.Lock()
	var changed []*job.Status
	for _, j := range c.store.GetJobs() {
		if !j.Tracked {
			continue
		}
		if c.evaluateJobLocked(j, now) {
			changed = append(changed, j)
		}
	}
	c.updateGaugesLocked()
	c.mu.Unlock()

	c.report(changed, nil)
}

func referencesSubscription(caps *network.CapabilitySnapshot, subscriptionID int32) bool {
	for _, subID := range caps.SubscriptionIDs() {
		if subID == subscriptionID {
			return true
		}
	}
	return false
}
