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
	"github.com/netsched/netsched/pkg/connmgr/job"
	"github.com/netsched/netsched/pkg/connmgr/network"
	"github.com/netsched/netsched/pkg/connmgr/satisfier"
)

// Importance is the owner's current process importance, ordered least
// important first.
type Importance int32

// Importance levels.
const (
	ImportanceCached Importance = iota
	ImportanceBackground
	ImportanceService
	ImportanceForegroundService
	ImportanceForeground
	ImportanceTop
)

// JobStore enumerates the scheduler's queued jobs. Used for rebalancing and
// reevaluation sweeps; the store owns job persistence.
type JobStore interface {
	// GetJobs returns all queued jobs.
	GetJobs() []*job.Status

	// GetJobsByOwner returns all queued jobs belonging to the given owner.
	GetJobsByOwner(ownerID uint32) []*job.Status
}

// ExecutionEngine is notified when jobs' connectivity constraint state
// changes. All calls are fire-and-forget; the controller never waits on
// them.
type ExecutionEngine interface {
	// OnControllerStateChanged reports the set of jobs whose satisfied bit
	// just changed.
	OnControllerStateChanged(changed []*job.Status)

	// OnRunJobNow asks the engine to run a now-satisfied job without
	// further scheduling delay.
	OnRunJobNow(j *job.Status)
}

// Registration is a handle for an active observer registration with an
// external collaborator. Unregistering is final for this registration
// instance; re-registration later is a fresh registration.
type Registration interface {
	// ID uniquely identifies this registration instance.
	ID() string

	// Unregister cancels the registration.
	Unregister()
}

// NetworkProvider is the network-stack collaborator.
type NetworkProvider interface {
	// RegisterNetworkObserver registers an interest in capability changes
	// for all networks. Events come back through the controller's
	// OnNetworkAvailable/OnNetworkCapabilitiesChanged/OnNetworkLost entry
	// points.
	RegisterNetworkObserver() (Registration, error)

	// RegisterDefaultNetworkObserver registers an interest in the default
	// network of one owner. Events come back through the controller's
	// OnDefaultNetworkChanged entry point.
	RegisterDefaultNetworkObserver(ownerID uint32) (Registration, error)

	// Capabilities returns the current capabilities of the given network,
	// nil if the network is gone.
	Capabilities(n *network.Descriptor) *network.CapabilitySnapshot

	// OpportunisticQuotaBytes returns the owner's remaining opportunistic
	// data allowance on the given network.
	OpportunisticQuotaBytes(n *network.Descriptor, ownerID uint32) int64
}

// PowerPolicy is the standby-bucket/power-policy collaborator.
type PowerPolicy interface {
	// RequestStandbyException asks for a temporary exemption from
	// power-saving network restrictions for the owner.
	RequestStandbyException(ownerID uint32)

	// RevokeStandbyException drops a previously requested exemption.
	RevokeStandbyException(ownerID uint32)

	// IsOwnerRestricted reports whether the owner's jobs are currently
	// standby-restricted and out of quota.
	IsOwnerRestricted(ownerID uint32) bool

	// OwnerImportance returns the owner's current process importance.
	OwnerImportance(ownerID uint32) Importance

	// DeviceState returns the current device-wide power state.
	DeviceState() satisfier.DeviceState
}

// Telephony is the telephony collaborator feeding the signal strength
// cache.
type Telephony interface {
	// RegisterSignalObserver registers an interest in signal strength
	// changes for one cellular subscription. Events come back through the
	// controller's OnSignalStrengthChanged entry point.
	RegisterSignalObserver(subscriptionID int32) (Registration, error)

	// SignalLevel returns the current signal level of the subscription.
	SignalLevel(subscriptionID int32) network.SignalLevel
}
