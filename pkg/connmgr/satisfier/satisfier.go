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

// Package satisfier decides whether a network's capabilities satisfy a job's
// connectivity requirement. Every function here is pure given its inputs;
// device-wide facts are passed in via Params so results are deterministic
// and testable step by step.
package satisfier

import (
	"time"

	"github.com/netsched/netsched/pkg/connmgr/job"
	"github.com/netsched/netsched/pkg/connmgr/network"
)

// DeviceState is the device-wide power state consulted by several
// predicates.
type DeviceState struct {
	Charging      bool
	BatteryNotLow bool
}

// Constants are the tunable thresholds of the satisfaction predicate. They
// come from the controller config.
type Constants struct {
	// CongestionDelayFraction is the fraction of the run-time window a job
	// must have consumed before it is allowed onto a congested network.
	CongestionDelayFraction float64

	// RelaxFraction is the fraction of the run-time window after which the
	// metered requirement of prefetch jobs is relaxed and the cellular
	// signal gate loosens for default-priority jobs.
	RelaxFraction float64
}

// Params carries the per-evaluation facts the controller resolves before
// calling into the predicate chain.
type Params struct {
	// Now is the evaluation time.
	Now time.Time

	// Device is the current device power state.
	Device DeviceState

	// SignalLevel is the best known signal level across the cellular
	// subscriptions backing the evaluated network.
	SignalLevel network.SignalLevel

	// OwnerRestricted is set when the job's owner is standby-restricted and
	// currently out of quota; it forces the unmetered requirement.
	OwnerRestricted bool

	// OpportunisticQuotaBytes is the owner's available opportunistic data
	// allowance on the evaluated network. Advisory only: it is checked,
	// never debited here.
	OpportunisticQuotaBytes int64
}

// IsSatisfied reports whether the network behind caps satisfies the job's
// connectivity requirement. The steps run short-circuit in a fixed order:
// usable, insane, congestion delay, signal gate, then strict or relaxed
// matching. Absent capabilities fail closed.
func IsSatisfied(j *job.Status, caps *network.CapabilitySnapshot, p Params, c Constants) bool {
	if !IsUsable(caps) {
		return false
	}
	if IsInsane(j, caps, p) {
		return false
	}
	if IsCongestionDelayed(j, caps, p, c) {
		return false
	}
	if !IsStrongEnough(j, caps, p, c) {
		return false
	}
	if IsStrictlySatisfied(j, caps, p) {
		return true
	}
	return IsRelaxedSatisfied(j, caps, p, c)
}

// IsUsable reports whether the network is present and not suspended.
func IsUsable(caps *network.CapabilitySnapshot) bool {
	return caps != nil && caps.HasCapability(network.CapabilityNotSuspended)
}

// transferTime estimates how long moving sizeBytes over a kbps link takes.
// Returns false when the bandwidth is unknown (0), in which case callers
// must be optimistic.
func transferTime(sizeBytes int64, kbps int64) (time.Duration, bool) {
	if kbps <= 0 || sizeBytes <= 0 {
		return 0, false
	}
	// bits = bytes * 8; kbps moves one kilobit per millisecond.
	ms := sizeBytes * 8 / kbps
	return time.Duration(ms) * time.Millisecond, true
}

// IsInsane reports whether the network is too slow for the job to finish
// within its maximum execution window. Unknown bandwidth is treated
// optimistically.
func IsInsane(j *job.Status, caps *network.CapabilitySnapshot, p Params) bool {
	maxExecution := j.MaxExecutionTime
	if maxExecution <= 0 {
		return false
	}

	if chunk := j.MinimumChunkBytes; chunk != job.BytesUnknown && chunk > 0 {
		// A network that cannot move even one chunk within the window will
		// never let the job make progress.
		if t, ok := transferTime(chunk, caps.DownstreamKbps()); ok && t > maxExecution {
			return true
		}
		if j.EstimatedUploadBytes > 0 {
			if t, ok := transferTime(chunk, caps.UpstreamKbps()); ok && t > maxExecution {
				return true
			}
		}
		return false
	}

	// No chunk declared: estimate the whole declared transfer. While
	// charging on an unmetered network the transfer costs nothing, so the
	// job is allowed to run as long as it needs.
	if p.Device.Charging && caps.HasCapability(network.CapabilityNotMetered) {
		return false
	}
	if dl := j.EstimatedDownloadBytes; dl > 0 {
		if t, ok := transferTime(dl, caps.DownstreamKbps()); ok && t > maxExecution {
			return true
		}
	}
	if ul := j.EstimatedUploadBytes; ul > 0 {
		if t, ok := transferTime(ul, caps.UpstreamKbps()); ok && t > maxExecution {
			return true
		}
	}
	return false
}

// IsCongestionDelayed reports whether the job should keep waiting because
// the network is congested and the job has plenty of its window left.
func IsCongestionDelayed(j *job.Status, caps *network.CapabilitySnapshot, p Params, c Constants) bool {
	if caps.HasCapability(network.CapabilityNotCongested) {
		return false
	}
	return j.FractionRunTime(p.Now) < c.CongestionDelayFraction
}

// IsStrongEnough applies the cellular signal strength gate. Non-cellular
// networks and VPN overlays pass unconditionally, as do high priority jobs.
func IsStrongEnough(j *job.Status, caps *network.CapabilitySnapshot, p Params, c Constants) bool {
	if !caps.HasTransport(network.TransportCellular) ||
		caps.HasTransport(network.TransportVPN) {
		return true
	}
	if j.Priority >= job.PriorityHigh {
		return true
	}

	chargingHealthy := p.Device.Charging && p.Device.BatteryNotLow
	switch {
	case p.SignalLevel >= network.SignalGood:
		return true
	case p.SignalLevel == network.SignalModerate:
		// Only the lowest tier is held back on a moderate signal.
		if j.Priority > job.PriorityMin {
			return true
		}
		return chargingHealthy || j.Running
	case p.SignalLevel == network.SignalPoor:
		if j.Priority < job.PriorityDefault {
			return false
		}
		return chargingHealthy || j.FractionRunTime(p.Now) >= c.RelaxFraction
	default:
		// No usable signal: nothing below high priority runs.
		return false
	}
}

// IsStrictlySatisfied checks the job's declared requirement against the
// capabilities, forcing unmetered when the owner is standby-restricted and
// out of quota.
func IsStrictlySatisfied(j *job.Status, caps *network.CapabilitySnapshot, p Params) bool {
	req := j.Required
	if req == nil {
		return false
	}
	if p.OwnerRestricted {
		req = req.WithCapability(network.CapabilityNotMetered)
	}
	return req.SatisfiedBy(caps)
}

// IsRelaxedSatisfied applies the prefetch relaxation: unrestricted prefetch
// jobs with a known positive download estimate may run on a metered network
// once they have waited past the relax fraction, provided the owner's
// opportunistic quota on the network covers the estimated transfer.
func IsRelaxedSatisfied(j *job.Status, caps *network.CapabilitySnapshot, p Params, c Constants) bool {
	if p.OwnerRestricted || !j.Prefetch || j.Required == nil {
		return false
	}
	if j.EstimatedDownloadBytes == job.BytesUnknown || j.EstimatedDownloadBytes <= 0 {
		return false
	}
	relaxed := j.Required.WithoutCapability(network.CapabilityNotMetered)
	if !relaxed.SatisfiedBy(caps) {
		return false
	}
	if j.FractionRunTime(p.Now) < c.RelaxFraction {
		return false
	}
	return p.OpportunisticQuotaBytes >= j.EstimatedTotalBytes()
}
