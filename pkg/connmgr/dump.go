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
	"time"
)

// OwnerSnapshot is the diagnostic view of one owner, in ranking order.
type OwnerSnapshot struct {
	OwnerID               uint32
	Importance            Importance
	TrackedJobs           int
	RunningJobs           int
	ReadyBlockedJobs      int
	RunnableExpedited     int
	EarliestEnqueue       time.Time
	ObserverRegistered    bool
	DefaultNetwork        string
	BlockedReasons        uint32
	HoldsStandbyException bool
}

// NetworkSnapshot is the diagnostic view of one available network.
type NetworkSnapshot struct {
	Network      string
	Capabilities string
}

// JobSnapshot is the diagnostic view of one tracked job.
type JobSnapshot struct {
	ID           string
	OwnerID      uint32
	Satisfied    bool
	BoundNetwork string
	Running      bool
	Expedited    bool
	Prefetch     bool
}

// Snapshot is a point-in-time diagnostic dump of the controller state.
type Snapshot struct {
	Owners              []OwnerSnapshot
	Networks            []NetworkSnapshot
	Jobs                []JobSnapshot
	RegisteredCallbacks int
	MaxCallbacks        int
}

// Dump returns a diagnostic snapshot: the owner ranking, available
// networks, and per-job state.
func (c *controller) Dump() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	ranked := make([]*ownerStats, 0, len(c.owners))
	for _, stats := range c.owners {
		ranked = append(ranked, stats)
	}
	sortOwners(ranked)

	snapshot := &Snapshot{
		RegisteredCallbacks: c.budget.size(),
		MaxCallbacks:        c.config.MaxCallbacks,
	}

	for _, stats := range ranked {
		owner := OwnerSnapshot{
			OwnerID:               stats.ownerID,
			Importance:            stats.importance,
			TrackedJobs:           stats.numTracked,
			RunningJobs:           stats.numRunning,
			ReadyBlockedJobs:      stats.numReadyBlocked,
			RunnableExpedited:     stats.numRunnableExpedited,
			EarliestEnqueue:       stats.earliestEnqueue,
			HoldsStandbyException: c.standby.holds(stats.ownerID),
		}
		if obs := c.budget.observer(stats.ownerID); obs != nil {
			owner.ObserverRegistered = true
			owner.BlockedReasons = obs.blockedReasons
			if obs.defaultNetwork != nil {
				owner.DefaultNetwork = obs.defaultNetwork.String()
			}
		}
		snapshot.Owners = append(snapshot.Owners, owner)

		for _, j := range c.store.GetJobsByOwner(stats.ownerID) {
			if !j.Tracked {
				continue
			}
			js := JobSnapshot{
				ID:        j.ID,
				OwnerID:   j.OwnerID,
				Satisfied: j.SatisfiedBit,
				Running:   j.Running,
				Expedited: j.Expedited,
				Prefetch:  j.Prefetch,
			}
			if j.BoundNetwork != nil {
				js.BoundNetwork = j.BoundNetwork.String()
			}
			snapshot.Jobs = append(snapshot.Jobs, js)
		}
	}

	for n, caps := range c.networks {
		snapshot.Networks = append(snapshot.Networks, NetworkSnapshot{
			Network:      n.String(),
			Capabilities: caps.String(),
		})
	}
	return snapshot
}
