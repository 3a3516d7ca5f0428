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

	"github.com/netsched/netsched/pkg/connmgr/satisfier"
)

const (
	defaultMaxCallbacks            = 125
	defaultRebalanceMinInterval    = 1 * time.Second
	defaultStatsUpdateMinInterval  = 30 * time.Second
	defaultEvaluationPeriod        = 10 * time.Minute
	defaultCongestionDelayFraction = 0.5
	defaultRelaxFraction           = 0.5
)

// Config holds the connectivity controller tunables.
type Config struct {
	// MaxCallbacks is the hard cap on simultaneously registered per-owner
	// default-network observers (the callback budget).
	MaxCallbacks int `yaml:"max_callbacks"`

	// RebalanceMinInterval is the minimum interval between two callback
	// budget rebalance passes. Requests arriving sooner are coalesced.
	RebalanceMinInterval time.Duration `yaml:"rebalance_min_interval"`

	// StatsUpdateMinInterval throttles per-owner stats recomputation,
	// which is O(owner's jobs) per owner.
	StatsUpdateMinInterval time.Duration `yaml:"stats_update_min_interval"`

	// EvaluationPeriod drives the periodic reevaluation of all tracked
	// jobs.
	EvaluationPeriod time.Duration `yaml:"evaluation_period"`

	// CongestionDelayFraction is the fraction of the run-time window a job
	// must have consumed before a congested network is acceptable.
	CongestionDelayFraction float64 `yaml:"congestion_delay_fraction"`

	// RelaxFraction is the fraction of the run-time window after which
	// prefetch jobs may fall back to metered networks and the cellular
	// signal gate loosens.
	RelaxFraction float64 `yaml:"relax_fraction"`
}

// normalize fills in defaults for unset fields.
func (c *Config) normalize() {
	if c.MaxCallbacks <= 0 {
		c.MaxCallbacks = defaultMaxCallbacks
	}
	if c.RebalanceMinInterval <= 0 {
		c.RebalanceMinInterval = defaultRebalanceMinInterval
	}
	if c.StatsUpdateMinInterval <= 0 {
		c.StatsUpdateMinInterval = defaultStatsUpdateMinInterval
	}
	if c.EvaluationPeriod <= 0 {
		c.EvaluationPeriod = defaultEvaluationPeriod
	}
	if c.CongestionDelayFraction <= 0 {
		c.CongestionDelayFraction = defaultCongestionDelayFraction
	}
	if c.RelaxFraction <= 0 {
		c.RelaxFraction = defaultRelaxFraction
	}
}

// constants returns the satisfier thresholds derived from the config.
func (c *Config) constants() satisfier.Constants {
	return satisfier.Constants{
		CongestionDelayFraction: c.CongestionDelayFraction,
		RelaxFraction:           c.RelaxFraction,
	}
}
