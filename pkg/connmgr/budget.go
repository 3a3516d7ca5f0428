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
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/netsched/netsched/pkg/connmgr/network"
)

// defaultNetworkObserver is a pooled handle for one owner's default-network
// observation slot. Handles are reset and reused across registration cycles
// to avoid allocation churn under network flapping; the slot index is
// stable for the handle's lifetime.
type defaultNetworkObserver struct {
	slot    int
	ownerID uint32

	// registration is the live registration with the network provider, nil
	// while the handle sits on the free list.
	registration Registration

	// defaultNetwork is the owner's currently resolved default network as
	// last reported by the provider, nil until the first report.
	defaultNetwork *network.Descriptor

	// blockedReasons is the bitmask of policy-block reasons currently
	// applying to the owner on its default network.
	blockedReasons uint32
}

// reset clears everything except the slot index before the handle returns
// to the free list.
func (o *defaultNetworkObserver) reset() {
	o.ownerID = 0
	o.registration = nil
	o.defaultNetwork = nil
	o.blockedReasons = 0
}

// budgetManager owns the bounded set of registered per-owner default-network
// observers and converges the live set toward the top-N ranked owners.
// All methods are called with the controller lock held.
type budgetManager struct {
	maxCallbacks int
	provider     NetworkProvider
	metrics      *Metrics

	// observers maps owner id to its active observer handle; len(observers)
	// never exceeds maxCallbacks.
	observers map[uint32]*defaultNetworkObserver

	// freeList is the arena of released observer handles, reused before new
	// handles are allocated.
	freeList []*defaultNetworkObserver
	nextSlot int
}

func newBudgetManager(
	maxCallbacks int,
	provider NetworkProvider,
	metrics *Metrics,
) *budgetManager {
	return &budgetManager{
		maxCallbacks: maxCallbacks,
		provider:     provider,
		metrics:      metrics,
		observers:    make(map[uint32]*defaultNetworkObserver),
	}
}

// observer returns the owner's active observer handle, nil if none is
// registered.
func (b *budgetManager) observer(ownerID uint32) *defaultNetworkObserver {
	return b.observers[ownerID]
}

// registered reports whether the owner currently holds an observer slot.
func (b *budgetManager) registered(ownerID uint32) bool {
	_, ok := b.observers[ownerID]
	return ok
}

func (b *budgetManager) size() int {
	return len(b.observers)
}

func (b *budgetManager) hasCapacity() bool {
	return len(b.observers) < b.maxCallbacks
}

// ensureRegistered registers a default-network observer for the owner if
// the budget allows. Returns the handle, or nil when the budget is
// exhausted (registration is then deferred to the next rebalance pass). On
// provider failure the slot is treated as unregistered.
func (b *budgetManager) ensureRegistered(ownerID uint32) (*defaultNetworkObserver, error) {
	if obs, ok := b.observers[ownerID]; ok {
		return obs, nil
	}
	if !b.hasCapacity() {
		return nil, nil
	}

	obs := b.acquireHandle()
	obs.ownerID = ownerID

	registration, err := b.provider.RegisterDefaultNetworkObserver(ownerID)
	if err != nil {
		b.releaseHandle(obs)
		b.metrics.CallbackRegisterFail.Inc(1)
		return nil, errors.Wrapf(err,
			"unable to register default network observer for owner %d", ownerID)
	}

	obs.registration = registration
	b.observers[ownerID] = obs
	b.metrics.CallbackRegisterSuccess.Inc(1)
	b.metrics.RegisteredCallbacks.Update(float64(len(b.observers)))

	log.WithFields(log.Fields{
		"owner_id":        ownerID,
		"slot":            obs.slot,
		"registration_id": registration.ID(),
	}).Debug("Registered default network observer")
	return obs, nil
}

// unregister drops the owner's observer, if any, and returns its handle to
// the free list. Unregistering is final for that registration instance.
func (b *budgetManager) unregister(ownerID uint32) bool {
	obs, ok := b.observers[ownerID]
	if !ok {
		return false
	}

	obs.registration.Unregister()
	delete(b.observers, ownerID)
	b.releaseHandle(obs)
	b.metrics.CallbackUnregistered.Inc(1)
	b.metrics.RegisteredCallbacks.Update(float64(len(b.observers)))

	log.WithField("owner_id", ownerID).
		Debug("Unregistered default network observer")
	return true
}

// converge re-targets the live observer set toward the first maxCallbacks
// owners of the ranked list. Evictions happen before admissions within one
// pass since the total is capacity-bound. Returns the owners whose
// observers were evicted.
func (b *budgetManager) converge(ranked []*ownerStats) ([]uint32, error) {
	topN := make(map[uint32]bool, b.maxCallbacks)
	for i, o := range ranked {
		if i >= b.maxCallbacks {
			break
		}
		topN[o.ownerID] = true
	}

	var evicted []uint32
	for ownerID := range b.observers {
		if topN[ownerID] {
			continue
		}
		b.unregister(ownerID)
		b.metrics.CallbackEvictions.Inc(1)
		evicted = append(evicted, ownerID)
	}

	var combinedErr error
	for i, o := range ranked {
		if i >= b.maxCallbacks || !b.hasCapacity() {
			break
		}
		if _, err := b.ensureRegistered(o.ownerID); err != nil {
			combinedErr = multierr.Append(combinedErr, err)
		}
	}
	return evicted, combinedErr
}

// updateDefault records the owner's newly reported default network and
// block reasons. Returns false when no observer is registered for the
// owner, which happens when a report races an eviction.
func (b *budgetManager) updateDefault(
	ownerID uint32,
	n *network.Descriptor,
	blockedReasons uint32,
) bool {
	obs, ok := b.observers[ownerID]
	if !ok {
		return false
	}
	obs.defaultNetwork = n
	obs.blockedReasons = blockedReasons
	return true
}

// clearDefault drops any observer references to a lost network.
func (b *budgetManager) clearDefault(n *network.Descriptor) []uint32 {
	var affected []uint32
	for ownerID, obs := range b.observers {
		if obs.defaultNetwork == n {
			obs.defaultNetwork = nil
			affected = append(affected, ownerID)
		}
	}
	return affected
}

// unregisterAll drops every observer, used on controller shutdown.
func (b *budgetManager) unregisterAll() {
	for ownerID := range b.observers {
		b.unregister(ownerID)
	}
}

func (b *budgetManager) acquireHandle() *defaultNetworkObserver {
	if n := len(b.freeList); n > 0 {
		obs := b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
		return obs
	}
	obs := &defaultNetworkObserver{slot: b.nextSlot}
	b.nextSlot++
	return obs
}

func (b *budgetManager) releaseHandle(obs *defaultNetworkObserver) {
	obs.reset()
	b.freeList = append(b.freeList, obs)
}
