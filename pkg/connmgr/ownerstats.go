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

	"github.com/netsched/netsched/pkg/connmgr/job"
	"github.com/netsched/netsched/pkg/connmgr/network"
)

// ownerStats is the per-owner aggregate used to rank owners for the
// callback budget. An ownerStats entry exists iff the owner has at least
// one currently tracked job or a still-registered default-network observer;
// destruction drops the observer first. All fields are guarded by the
// controller lock.
type ownerStats struct {
	ownerID uint32

	// Counts refreshed by refresh(); recomputation is O(owner's jobs) and
	// throttled by the stats-update interval.
	numTracked           int
	numRunning           int
	numReadyBlocked      int
	numRequestAvailable  int
	numRunnableExpedited int
	numRegular           int

	earliestEnqueue          time.Time
	earliestExpeditedEnqueue time.Time

	importance  Importance
	lastUpdated time.Time

	// rankKeys is the precomputed fixed-order ranking key vector; see
	// ranker.go for the level semantics.
	rankKeys [numRankLevels]int64
}

func newOwnerStats(ownerID uint32) *ownerStats {
	return &ownerStats{
		ownerID: ownerID,
	}
}

// refresh recomputes the owner's job counts from the given job list and the
// currently available networks, then rebuilds the ranking keys. Callers
// hold the controller lock.
func (o *ownerStats) refresh(
	jobs []*job.Status,
	available map[*network.Descriptor]*network.CapabilitySnapshot,
	importance Importance,
	now time.Time,
) {
	o.numTracked = 0
	o.numRunning = 0
	o.numReadyBlocked = 0
	o.numRequestAvailable = 0
	o.numRunnableExpedited = 0
	o.numRegular = 0
	o.earliestEnqueue = time.Time{}
	o.earliestExpeditedEnqueue = time.Time{}

	for _, j := range jobs {
		if !j.Tracked {
			continue
		}
		o.numTracked++
		if j.Running {
			o.numRunning++
		}
		if !j.Running && !j.SatisfiedBit {
			o.numReadyBlocked++
		}
		if requestAvailable(j, available) {
			o.numRequestAvailable++
		}
		if j.Expedited {
			if !j.Running {
				o.numRunnableExpedited++
			}
			if o.earliestExpeditedEnqueue.IsZero() ||
				j.EnqueueTime.Before(o.earliestExpeditedEnqueue) {
				o.earliestExpeditedEnqueue = j.EnqueueTime
			}
		} else {
			o.numRegular++
			if o.earliestEnqueue.IsZero() ||
				j.EnqueueTime.Before(o.earliestEnqueue) {
				o.earliestEnqueue = j.EnqueueTime
			}
		}
	}

	o.importance = importance
	o.lastUpdated = now
	o.computeRankKeys()
}

// requestAvailable reports whether any currently available network could
// satisfy the job's declared requirement.
func requestAvailable(
	j *job.Status,
	available map[*network.Descriptor]*network.CapabilitySnapshot,
) bool {
	if j.Required == nil {
		return false
	}
	for _, caps := range available {
		if j.Required.SatisfiedBy(caps) {
			return true
		}
	}
	return false
}
