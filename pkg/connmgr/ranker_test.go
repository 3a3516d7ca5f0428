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
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/netsched/netsched/pkg/connmgr/job"
	"github.com/netsched/netsched/pkg/connmgr/network"
)

type RankerTestSuite struct {
	suite.Suite

	now time.Time
}

func (s *RankerTestSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestRanker(t *testing.T) {
	suite.Run(t, new(RankerTestSuite))
}

func (s *RankerTestSuite) stats(ownerID uint32, mutate func(*ownerStats)) *ownerStats {
	o := newOwnerStats(ownerID)
	o.numTracked = 1
	o.importance = ImportanceCached
	if mutate != nil {
		mutate(o)
	}
	o.computeRankKeys()
	return o
}

func (s *RankerTestSuite) TestRunningOutranksEverything() {
	running := s.stats(1, func(o *ownerStats) {
		o.numRunning = 1
	})
	top := s.stats(2, func(o *ownerStats) {
		o.importance = ImportanceTop
		o.numReadyBlocked = 1
		o.numRunnableExpedited = 1
	})
	s.Positive(compareOwnerStats(running, top))
}

func (s *RankerTestSuite) TestReadyBlockedBeatsRequestAvailable() {
	blocked := s.stats(1, func(o *ownerStats) {
		o.numReadyBlocked = 1
	})
	available := s.stats(2, func(o *ownerStats) {
		o.numRequestAvailable = 1
	})
	s.Positive(compareOwnerStats(blocked, available))
}

func (s *RankerTestSuite) TestTopImportanceBeatsExpedited() {
	top := s.stats(1, func(o *ownerStats) {
		o.importance = ImportanceTop
	})
	expedited := s.stats(2, func(o *ownerStats) {
		o.numRunnableExpedited = 1
	})
	s.Positive(compareOwnerStats(top, expedited))
}

func (s *RankerTestSuite) TestExpeditedBeatsForegroundService() {
	expedited := s.stats(1, func(o *ownerStats) {
		o.numRunnableExpedited = 1
	})
	fgs := s.stats(2, func(o *ownerStats) {
		o.importance = ImportanceForegroundService
	})
	s.Positive(compareOwnerStats(expedited, fgs))
}

func (s *RankerTestSuite) TestEarlierExpeditedEnqueueWins() {
	early := s.stats(1, func(o *ownerStats) {
		o.numRunnableExpedited = 1
		o.earliestExpeditedEnqueue = s.now.Add(-time.Hour)
	})
	late := s.stats(2, func(o *ownerStats) {
		o.numRunnableExpedited = 1
		o.earliestExpeditedEnqueue = s.now.Add(-time.Minute)
	})
	s.Positive(compareOwnerStats(early, late))
}

func (s *RankerTestSuite) TestImportanceBiasBreaksTies() {
	fg := s.stats(1, func(o *ownerStats) {
		o.importance = ImportanceForeground
	})
	svc := s.stats(2, func(o *ownerStats) {
		o.importance = ImportanceService
	})
	s.Positive(compareOwnerStats(fg, svc))
}

func (s *RankerTestSuite) TestEarliestEnqueueIsFinalTieBreak() {
	early := s.stats(1, func(o *ownerStats) {
		o.earliestEnqueue = s.now.Add(-time.Hour)
	})
	late := s.stats(2, func(o *ownerStats) {
		o.earliestEnqueue = s.now.Add(-time.Minute)
	})
	s.Positive(compareOwnerStats(early, late))
	s.Negative(compareOwnerStats(late, early))
}

func (s *RankerTestSuite) TestNoEnqueueRanksWorst() {
	some := s.stats(1, func(o *ownerStats) {
		o.earliestEnqueue = s.now
	})
	none := s.stats(2, nil)
	s.Positive(compareOwnerStats(some, none))
}

func (s *RankerTestSuite) TestEqualOwnersCompareZero() {
	a := s.stats(1, nil)
	b := s.stats(2, nil)
	s.Zero(compareOwnerStats(a, b))
}

func (s *RankerTestSuite) TestSortOwnersIsStableAndDescending() {
	running := s.stats(1, func(o *ownerStats) {
		o.numRunning = 1
	})
	blockedA := s.stats(2, func(o *ownerStats) {
		o.numReadyBlocked = 1
	})
	blockedB := s.stats(3, func(o *ownerStats) {
		o.numReadyBlocked = 1
	})
	idle := s.stats(4, nil)

	owners := []*ownerStats{idle, blockedA, blockedB, running}
	sortOwners(owners)

	s.Equal(uint32(1), owners[0].ownerID)
	// Equal owners keep their incoming relative order.
	s.Equal(uint32(2), owners[1].ownerID)
	s.Equal(uint32(3), owners[2].ownerID)
	s.Equal(uint32(4), owners[3].ownerID)
}

func (s *RankerTestSuite) TestRefreshCounts() {
	wifi := network.NewDescriptor("wifi0")
	available := map[*network.Descriptor]*network.CapabilitySnapshot{
		wifi: network.NewCapabilitySnapshot(
			[]network.Transport{network.TransportWiFi},
			[]network.Capability{
				network.CapabilityInternet,
				network.CapabilityNotSuspended,
			},
			0, 0, nil),
	}

	req := network.NewRequest(nil, []network.Capability{
		network.CapabilityInternet,
	})
	unsatisfiable := network.NewRequest(
		[]network.Transport{network.TransportCellular},
		[]network.Capability{network.CapabilityInternet},
	)

	jobs := []*job.Status{
		{
			ID: "running", OwnerID: 7, Required: req, Tracked: true,
			Running: true, SatisfiedBit: true,
			EnqueueTime: s.now.Add(-3 * time.Hour),
		},
		{
			ID: "blocked", OwnerID: 7, Required: unsatisfiable, Tracked: true,
			EnqueueTime: s.now.Add(-2 * time.Hour),
		},
		{
			ID: "expedited", OwnerID: 7, Required: req, Tracked: true,
			Expedited:   true,
			EnqueueTime: s.now.Add(-time.Hour),
		},
		{
			ID: "untracked", OwnerID: 7, Required: req,
			EnqueueTime: s.now.Add(-4 * time.Hour),
		},
	}

	o := newOwnerStats(7)
	o.refresh(jobs, available, ImportanceService, s.now)

	s.Equal(3, o.numTracked)
	s.Equal(1, o.numRunning)
	s.Equal(2, o.numReadyBlocked)
	s.Equal(2, o.numRequestAvailable)
	s.Equal(1, o.numRunnableExpedited)
	s.Equal(2, o.numRegular)
	s.Equal(s.now.Add(-3*time.Hour), o.earliestEnqueue)
	s.Equal(s.now.Add(-time.Hour), o.earliestExpeditedEnqueue)
	s.Equal(ImportanceService, o.importance)
	s.Equal(s.now, o.lastUpdated)
}
