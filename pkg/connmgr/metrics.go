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

import "github.com/uber-go/tally"

// Metrics is a placeholder for all metrics in connmgr.
type Metrics struct {
	Evaluations           tally.Counter
	SatisfiedTransitions  tally.Counter
	UnsatisfiedTransition tally.Counter

	CallbackRegisterSuccess tally.Counter
	CallbackRegisterFail    tally.Counter
	CallbackUnregistered    tally.Counter
	CallbackEvictions       tally.Counter

	Rebalances        tally.Counter
	RebalanceDeferred tally.Counter
	RebalanceDuration tally.Timer

	StandbyExceptionRequests tally.Counter
	StandbyExceptionRevokes  tally.Counter

	TrackedJobs         tally.Gauge
	TrackedOwners       tally.Gauge
	AvailableNetworks   tally.Gauge
	RegisteredCallbacks tally.Gauge
	SignalSubscriptions tally.Gauge
}

// NewMetrics returns a new instance of connmgr.Metrics.
func NewMetrics(scope tally.Scope) *Metrics {
	successScope := scope.Tagged(map[string]string{"result": "success"})
	failScope := scope.Tagged(map[string]string{"result": "fail"})
	callbackScope := scope.SubScope("callback")
	rebalanceScope := scope.SubScope("rebalance")
	standbyScope := scope.SubScope("standby")

	return &Metrics{
		Evaluations:           scope.Counter("evaluations"),
		SatisfiedTransitions:  successScope.Counter("transitions"),
		UnsatisfiedTransition: failScope.Counter("transitions"),

		CallbackRegisterSuccess: callbackScope.Tagged(
			map[string]string{"result": "success"}).Counter("register"),
		CallbackRegisterFail: callbackScope.Tagged(
			map[string]string{"result": "fail"}).Counter("register"),
		CallbackUnregistered: callbackScope.Counter("unregister"),
		CallbackEvictions:    callbackScope.Counter("evictions"),

		Rebalances:        rebalanceScope.Counter("runs"),
		RebalanceDeferred: rebalanceScope.Counter("deferred"),
		RebalanceDuration: rebalanceScope.Timer("duration"),

		StandbyExceptionRequests: standbyScope.Counter("requests"),
		StandbyExceptionRevokes:  standbyScope.Counter("revokes"),

		TrackedJobs:         scope.Gauge("tracked_jobs"),
		TrackedOwners:       scope.Gauge("tracked_owners"),
		AvailableNetworks:   scope.Gauge("available_networks"),
		RegisteredCallbacks: scope.Gauge("registered_callbacks"),
		SignalSubscriptions: scope.Gauge("signal_subscriptions"),
	}
}
