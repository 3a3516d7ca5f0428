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

	"github.com/netsched/netsched/pkg/connmgr/job"
)

type StandbyTestSuite struct {
	suite.Suite

	policy  *fakePowerPolicy
	tracker *standbyTracker
}

func (s *StandbyTestSuite) SetupTest() {
	s.policy = newFakePowerPolicy()
	s.tracker = newStandbyTracker(s.policy, NewMetrics(tally.NoopScope))
}

func TestStandby(t *testing.T) {
	suite.Run(t, new(StandbyTestSuite))
}

func (s *StandbyTestSuite) job(id string, ownerID uint32) *job.Status {
	return &job.Status{ID: id, OwnerID: ownerID}
}

func (s *StandbyTestSuite) TestRequestIsIdempotentPerOwner() {
	a := s.job("a", 1)
	b := s.job("b", 1)

	// Three requests across two jobs of one owner: exactly one external
	// request.
	s.tracker.request(a)
	s.tracker.request(a)
	s.tracker.request(b)
	s.Equal(1, s.policy.requests[1])
	s.True(s.tracker.holds(1))
}

func (s *StandbyTestSuite) TestRevokeOnlyWhenLastJobLeaves() {
	a := s.job("a", 1)
	b := s.job("b", 1)
	s.tracker.request(a)
	s.tracker.request(b)

	s.tracker.maybeRevoke(a)
	s.Zero(s.policy.revokes[1])
	s.True(s.tracker.holds(1))

	s.tracker.maybeRevoke(b)
	s.Equal(1, s.policy.revokes[1])
	s.False(s.tracker.holds(1))

	// Revoking again is a no-op.
	s.tracker.maybeRevoke(b)
	s.Equal(1, s.policy.revokes[1])
}

func (s *StandbyTestSuite) TestRevokeUnknownJobIsNoop() {
	s.tracker.maybeRevoke(s.job("ghost", 1))
	s.Zero(s.policy.revokes[1])
}

func (s *StandbyTestSuite) TestRequestAfterRevokeRequestsAgain() {
	a := s.job("a", 1)
	s.tracker.request(a)
	s.tracker.maybeRevoke(a)
	s.tracker.request(a)
	s.Equal(2, s.policy.requests[1])
	s.Equal(1, s.policy.revokes[1])
}

func (s *StandbyTestSuite) TestOwnersAreIndependent() {
	s.tracker.request(s.job("a", 1))
	s.tracker.request(s.job("b", 2))
	s.Equal(1, s.policy.requests[1])
	s.Equal(1, s.policy.requests[2])

	s.tracker.maybeRevoke(s.job("a", 1))
	s.False(s.tracker.holds(1))
	s.True(s.tracker.holds(2))
}

func (s *StandbyTestSuite) TestRevokeOwner() {
	s.tracker.request(s.job("a", 1))
	s.tracker.request(s.job("b", 1))

	s.tracker.revokeOwner(1)
	s.Equal(1, s.policy.revokes[1])
	s.False(s.tracker.holds(1))

	s.tracker.revokeOwner(1)
	s.Equal(1, s.policy.revokes[1])
}
