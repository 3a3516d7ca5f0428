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

package netsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"

	"github.com/netsched/netsched/pkg/connmgr"
	"github.com/netsched/netsched/pkg/connmgr/network"
)

type WorldTestSuite struct {
	suite.Suite
}

func TestWorld(t *testing.T) {
	suite.Run(t, new(WorldTestSuite))
}

func (s *WorldTestSuite) config() *Config {
	return &Config{
		Networks: []NetworkConfig{
			{
				Name:           "wifi0",
				Transports:     []string{"WIFI"},
				Capabilities:   []string{"INTERNET", "NOT_METERED", "NOT_CONGESTED", "NOT_SUSPENDED"},
				UpstreamKbps:   10000,
				DownstreamKbps: 50000,
				DefaultFor:     []uint32{10001},
			},
			{
				Name:           "cell0",
				Transports:     []string{"CELLULAR"},
				Capabilities:   []string{"INTERNET", "NOT_CONGESTED", "NOT_SUSPENDED"},
				UpstreamKbps:   2000,
				DownstreamKbps: 8000,
				Subscriptions:  []int32{1},
				DefaultFor:     []uint32{10002},
			},
		},
		Owners: []OwnerConfig{
			{ID: 10001, Importance: "FOREGROUND"},
			{ID: 10002, Importance: "CACHED"},
		},
		Jobs: []JobConfig{
			{
				ID:           "backup",
				Owner:        10001,
				Capabilities: []string{"INTERNET"},
				Age:          30 * time.Minute,
				Window:       time.Hour,
			},
			{
				ID:           "sync",
				Owner:        10002,
				Capabilities: []string{"INTERNET"},
				Age:          30 * time.Minute,
				Window:       time.Hour,
			},
		},
		Signals: map[int32]string{1: "GREAT"},
	}
}

func (s *WorldTestSuite) TestNewWorldBuildsScriptedState() {
	world, err := NewWorld(s.config())
	s.NoError(err)

	s.Len(world.GetJobs(), 2)
	s.Len(world.GetJobsByOwner(10001), 1)
	s.Equal(connmgr.ImportanceForeground, world.OwnerImportance(10001))
	s.Equal(connmgr.ImportanceCached, world.OwnerImportance(99))
	s.Equal(network.SignalGreat, world.SignalLevel(1))
	s.False(world.IsOwnerRestricted(10001))

	// Resolution by descriptor identity.
	s.Nil(world.Capabilities(network.NewDescriptor("wifi0")))
	s.NotNil(world.Capabilities(world.networks[0].descriptor))
}

func (s *WorldTestSuite) TestNewWorldRejectsUnknownNames() {
	cfg := s.config()
	cfg.Networks[0].Transports = []string{"CARRIER_PIGEON"}
	_, err := NewWorld(cfg)
	s.Error(err)

	cfg = s.config()
	cfg.Jobs[0].Capabilities = []string{"BOGUS"}
	_, err = NewWorld(cfg)
	s.Error(err)

	cfg = s.config()
	cfg.Signals[1] = "LOUD"
	_, err = NewWorld(cfg)
	s.Error(err)

	cfg = s.config()
	cfg.Owners[0].Importance = "IMPORTANT"
	_, err = NewWorld(cfg)
	s.Error(err)
}

func (s *WorldTestSuite) TestReplaySatisfiesScriptedJobs() {
	world, err := NewWorld(s.config())
	s.NoError(err)

	controller, err := connmgr.NewController(
		tally.NoopScope,
		&connmgr.Config{RebalanceMinInterval: time.Nanosecond},
		world,
		NewEngine(tally.NoopScope),
		world, world, world)
	s.NoError(err)

	world.Replay(controller)

	for _, j := range world.GetJobs() {
		s.True(j.Tracked, "job %s should be tracked", j.ID)
		s.True(j.SatisfiedBit, "job %s should be satisfied", j.ID)
		s.NotNil(j.BoundNetwork, "job %s should be bound", j.ID)
	}

	snapshot := controller.Dump()
	s.Len(snapshot.Owners, 2)
	s.Len(snapshot.Networks, 2)
	s.Equal(2, snapshot.RegisteredCallbacks)
}
