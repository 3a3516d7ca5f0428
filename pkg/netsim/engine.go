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
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/netsched/netsched/pkg/connmgr/job"
)

// EngineMetrics counts what the simulated execution engine receives from
// the controller.
type EngineMetrics struct {
	StateChanges tally.Counter
	ChangedJobs  tally.Counter
	RunNowNudges tally.Counter
}

// NewEngineMetrics builds the engine metrics under the given scope.
func NewEngineMetrics(scope tally.Scope) *EngineMetrics {
	engineScope := scope.SubScope("engine")
	return &EngineMetrics{
		StateChanges: engineScope.Counter("state_changes"),
		ChangedJobs:  engineScope.Counter("changed_jobs"),
		RunNowNudges: engineScope.Counter("run_now_nudges"),
	}
}

// Engine is a logging ExecutionEngine for the simulator: it records every
// constraint change and run-now nudge the controller reports.
type Engine struct {
	metrics *EngineMetrics
}

// NewEngine creates the simulated execution engine.
func NewEngine(scope tally.Scope) *Engine {
	return &Engine{
		metrics: NewEngineMetrics(scope),
	}
}

// OnControllerStateChanged implements ExecutionEngine.
func (e *Engine) OnControllerStateChanged(changed []*job.Status) {
	e.metrics.StateChanges.Inc(1)
	e.metrics.ChangedJobs.Inc(int64(len(changed)))
	for _, j := range changed {
		fields := log.Fields{
			"job_id":    j.ID,
			"owner_id":  j.OwnerID,
			"satisfied": j.SatisfiedBit,
		}
		if j.BoundNetwork != nil {
			fields["network"] = j.BoundNetwork.String()
		}
		log.WithFields(fields).Info("Constraint changed")
	}
}

// OnRunJobNow implements ExecutionEngine.
func (e *Engine) OnRunJobNow(j *job.Status) {
	e.metrics.RunNowNudges.Inc(1)
	log.WithFields(log.Fields{
		"job_id":   j.ID,
		"owner_id": j.OwnerID,
	}).Info("Run-now nudge")
}
