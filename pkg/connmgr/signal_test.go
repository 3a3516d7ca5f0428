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

	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"

	"github.com/netsched/netsched/pkg/connmgr/network"
)

type SignalTestSuite struct {
	suite.Suite

	telephony *fakeTelephony
	cache     *signalCache
}

func (s *SignalTestSuite) SetupTest() {
	s.telephony = newFakeTelephony()
	s.cache = newSignalCache(s.telephony, NewMetrics(tally.NoopScope))
}

func TestSignal(t *testing.T) {
	suite.Run(t, new(SignalTestSuite))
}

func (s *SignalTestSuite) TestRetainSubscribesOnceAndSeedsLevel() {
	s.telephony.levels[1] = network.SignalGood

	s.cache.retain([]int32{1})
	s.cache.retain([]int32{1})

	s.Len(s.telephony.registrations, 1)
	s.Equal(network.SignalGood, s.cache.best([]int32{1}))
}

func (s *SignalTestSuite) TestReleaseUnsubscribesAtZeroRefs() {
	s.cache.retain([]int32{1})
	s.cache.retain([]int32{1})

	s.cache.release([]int32{1})
	s.False(s.telephony.registrations[1].unregistered)

	s.cache.release([]int32{1})
	s.True(s.telephony.registrations[1].unregistered)
	s.Equal(network.SignalNoneOrUnknown, s.cache.best([]int32{1}))
}

func (s *SignalTestSuite) TestReleaseUntrackedIsNoop() {
	s.cache.release([]int32{42})
	s.Empty(s.telephony.registrations)
}

func (s *SignalTestSuite) TestUpdate() {
	s.cache.retain([]int32{1})

	s.True(s.cache.update(1, network.SignalPoor))
	s.Equal(network.SignalPoor, s.cache.best([]int32{1}))

	// Same level again: no change.
	s.False(s.cache.update(1, network.SignalPoor))

	// Untracked subscriptions are dropped.
	s.False(s.cache.update(99, network.SignalGreat))
	s.Equal(network.SignalNoneOrUnknown, s.cache.best([]int32{99}))
}

func (s *SignalTestSuite) TestBestAcrossSubscriptions() {
	s.telephony.levels[1] = network.SignalPoor
	s.telephony.levels[2] = network.SignalGreat
	s.cache.retain([]int32{1, 2})

	s.Equal(network.SignalGreat, s.cache.best([]int32{1, 2}))
	s.Equal(network.SignalPoor, s.cache.best([]int32{1}))
	s.Equal(network.SignalNoneOrUnknown, s.cache.best(nil))
}

func (s *SignalTestSuite) TestRegistrationFailureKeepsSeededLevel() {
	s.telephony.levels[1] = network.SignalModerate
	s.telephony.failSubs[1] = true

	s.cache.retain([]int32{1})
	s.Equal(network.SignalModerate, s.cache.best([]int32{1}))

	// Updates still apply; periodic reevaluation relies on this.
	s.True(s.cache.update(1, network.SignalGood))
	s.Equal(network.SignalGood, s.cache.best([]int32{1}))
}

func (s *SignalTestSuite) TestUnregisterAll() {
	s.cache.retain([]int32{1, 2})
	s.cache.unregisterAll()
	s.True(s.telephony.registrations[1].unregistered)
	s.True(s.telephony.registrations[2].unregistered)
}
