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
	"math"
	"sort"
	"time"
)

// Ranking levels, most significant first. Owners are compared level by
// level; a level is only consulted when every earlier level ties.
const (
	rankRunning = iota
	rankReadyBlocked
	rankRequestAvailable
	rankTopImportance
	rankRunnableExpedited
	rankForegroundService
	rankEarliestExpedited
	rankImportanceBias
	rankEarliestEnqueue

	numRankLevels
)

// computeRankKeys rebuilds the precomputed ranking key vector from the
// current counts. Larger is better at every level, so the comparison is a
// plain tuple compare.
func (o *ownerStats) computeRankKeys() {
	k := &o.rankKeys
	k[rankRunning] = boolKey(o.numRunning > 0)
	k[rankReadyBlocked] = boolKey(o.numReadyBlocked > 0)
	k[rankRequestAvailable] = boolKey(o.numRequestAvailable > 0)
	k[rankTopImportance] = boolKey(o.importance == ImportanceTop)
	k[rankRunnableExpedited] = boolKey(o.numRunnableExpedited > 0)
	k[rankForegroundService] = boolKey(o.importance >= ImportanceForegroundService)
	k[rankEarliestExpedited] = timeKey(o.earliestExpeditedEnqueue)
	k[rankImportanceBias] = int64(o.importance)
	k[rankEarliestEnqueue] = timeKey(o.earliestEnqueue)
}

func boolKey(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// timeKey maps a timestamp so earlier times rank higher; the zero time (no
// such job) ranks worst.
func timeKey(t time.Time) int64 {
	if t.IsZero() {
		return math.MinInt64
	}
	return -t.UnixNano()
}

// compareOwnerStats returns a positive value if a outranks b, negative if b
// outranks a, zero if equal at every level.
func compareOwnerStats(a, b *ownerStats) int {
	for level := 0; level < numRankLevels; level++ {
		if a.rankKeys[level] > b.rankKeys[level] {
			return 1
		}
		if a.rankKeys[level] < b.rankKeys[level] {
			return -1
		}
	}
	return 0
}

// sortOwners orders owners most-deserving-of-a-live-callback first. The
// sort is stable so equal owners keep their relative order across passes.
func sortOwners(owners []*ownerStats) {
	sort.SliceStable(owners, func(i, j int) bool {
		return compareOwnerStats(owners[i], owners[j]) > 0
	})
}
