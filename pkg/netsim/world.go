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

// Package netsim provides scripted, in-memory implementations of the
// connectivity controller's collaborator interfaces, configured from YAML.
// The simulator daemon wires a real controller against a netsim world to
// exercise the whole stack without a device.
package netsim

import (
	"sync"
	"time"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/netsched/netsched/pkg/connmgr"
	"github.com/netsched/netsched/pkg/connmgr/job"
	"github.com/netsched/netsched/pkg/connmgr/network"
	"github.com/netsched/netsched/pkg/connmgr/satisfier"
)

// scriptedNetwork pairs a live descriptor with its scripted configuration.
type scriptedNetwork struct {
	descriptor   *network.Descriptor
	capabilities *network.CapabilitySnapshot
	defaultFor   []uint32
}

// World is the scripted environment: it implements JobStore,
// NetworkProvider, PowerPolicy and Telephony, and owns the scripted
// networks, owners and jobs built from a Config.
type World struct {
	mu sync.Mutex

	networks []*scriptedNetwork
	jobs     map[uint32][]*job.Status
	order    []*job.Status

	importance map[uint32]connmgr.Importance
	restricted map[uint32]bool
	signals    map[int32]network.SignalLevel

	quotaBytes int64
}

// NewWorld builds a scripted world from the given config.
func NewWorld(cfg *Config) (*World, error) {
	w := &World{
		jobs:       make(map[uint32][]*job.Status),
		importance: make(map[uint32]connmgr.Importance),
		restricted: make(map[uint32]bool),
		signals:    make(map[int32]network.SignalLevel),
		quotaBytes: cfg.QuotaBytes,
	}

	now := time.Now()

	for _, nc := range cfg.Networks {
		transports, err := parseTransports(nc.Transports)
		if err != nil {
			return nil, errors.Wrapf(err, "network %s", nc.Name)
		}
		capabilities, err := parseCapabilities(nc.Capabilities)
		if err != nil {
			return nil, errors.Wrapf(err, "network %s", nc.Name)
		}
		w.networks = append(w.networks, &scriptedNetwork{
			descriptor: network.NewDescriptor(nc.Name),
			capabilities: network.NewCapabilitySnapshot(
				transports,
				capabilities,
				nc.UpstreamKbps,
				nc.DownstreamKbps,
				nc.Subscriptions),
			defaultFor: nc.DefaultFor,
		})
	}

	for _, oc := range cfg.Owners {
		imp, err := parseImportance(oc.Importance)
		if err != nil {
			return nil, errors.Wrapf(err, "owner %d", oc.ID)
		}
		w.importance[oc.ID] = imp
		w.restricted[oc.ID] = oc.Restricted
	}

	for subID, name := range cfg.Signals {
		level, err := parseSignalLevel(name)
		if err != nil {
			return nil, errors.Wrapf(err, "subscription %d", subID)
		}
		w.signals[subID] = level
	}

	for _, jc := range cfg.Jobs {
		transports, err := parseTransports(jc.Transports)
		if err != nil {
			return nil, errors.Wrapf(err, "job %s", jc.ID)
		}
		capabilities, err := parseCapabilities(jc.Capabilities)
		if err != nil {
			return nil, errors.Wrapf(err, "job %s", jc.ID)
		}

		j := &job.Status{
			ID:                     jc.ID,
			OwnerID:                jc.Owner,
			Required:               network.NewRequest(transports, capabilities),
			EstimatedUploadBytes:   orUnknown(jc.UploadBytes),
			EstimatedDownloadBytes: orUnknown(jc.DownloadBytes),
			MinimumChunkBytes:      orUnknown(jc.MinChunkBytes),
			MaxExecutionTime:       jc.MaxExecution,
			Priority:               job.Priority(jc.Priority),
			Expedited:              jc.Expedited,
			Prefetch:               jc.Prefetch,
			EnqueueTime:            now.Add(-jc.Age),
		}
		if j.Priority == 0 {
			j.Priority = job.PriorityDefault
		}
		if jc.Window > 0 {
			j.Deadline = j.EnqueueTime.Add(jc.Window)
		}
		w.jobs[jc.Owner] = append(w.jobs[jc.Owner], j)
		w.order = append(w.order, j)
	}
	return w, nil
}

func orUnknown(v int64) int64 {
	if v <= 0 {
		return job.BytesUnknown
	}
	return v
}

// GetJobs returns all scripted jobs.
func (w *World) GetJobs() []*job.Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*job.Status(nil), w.order...)
}

// GetJobsByOwner returns the scripted jobs of one owner.
func (w *World) GetJobsByOwner(ownerID uint32) []*job.Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*job.Status(nil), w.jobs[ownerID]...)
}

// RegisterNetworkObserver implements NetworkProvider.
func (w *World) RegisterNetworkObserver() (connmgr.Registration, error) {
	return newRegistration(), nil
}

// RegisterDefaultNetworkObserver implements NetworkProvider.
func (w *World) RegisterDefaultNetworkObserver(uint32) (connmgr.Registration, error) {
	return newRegistration(), nil
}

// Capabilities implements NetworkProvider against the scripted networks.
func (w *World) Capabilities(n *network.Descriptor) *network.CapabilitySnapshot {
	for _, sn := range w.networks {
		if sn.descriptor == n {
			return sn.capabilities
		}
	}
	return nil
}

// OpportunisticQuotaBytes implements NetworkProvider.
func (w *World) OpportunisticQuotaBytes(*network.Descriptor, uint32) int64 {
	return w.quotaBytes
}

// RequestStandbyException implements PowerPolicy.
func (w *World) RequestStandbyException(ownerID uint32) {
	log.WithField("owner_id", ownerID).Info("Standby exception requested")
}

// RevokeStandbyException implements PowerPolicy.
func (w *World) RevokeStandbyException(ownerID uint32) {
	log.WithField("owner_id", ownerID).Info("Standby exception revoked")
}

// IsOwnerRestricted implements PowerPolicy.
func (w *World) IsOwnerRestricted(ownerID uint32) bool {
	return w.restricted[ownerID]
}

// OwnerImportance implements PowerPolicy.
func (w *World) OwnerImportance(ownerID uint32) connmgr.Importance {
	if imp, ok := w.importance[ownerID]; ok {
		return imp
	}
	return connmgr.ImportanceCached
}

// DeviceState implements PowerPolicy. The simulated device sits on the
// charger with a healthy battery.
func (w *World) DeviceState() satisfier.DeviceState {
	return satisfier.DeviceState{Charging: true, BatteryNotLow: true}
}

// RegisterSignalObserver implements Telephony.
func (w *World) RegisterSignalObserver(int32) (connmgr.Registration, error) {
	return newRegistration(), nil
}

// SignalLevel implements Telephony against the scripted levels.
func (w *World) SignalLevel(subscriptionID int32) network.SignalLevel {
	return w.signals[subscriptionID]
}

// Replay drives the scripted world into the controller: track every job,
// bring every network up, then report the scripted default networks.
func (w *World) Replay(controller connmgr.Controller) {
	for _, j := range w.order {
		controller.StartTracking(j)
	}
	for _, sn := range w.networks {
		controller.OnNetworkAvailable(sn.descriptor, sn.capabilities)
	}
	for _, sn := range w.networks {
		for _, ownerID := range sn.defaultFor {
			controller.OnDefaultNetworkChanged(ownerID, sn.descriptor, 0)
		}
	}
}

type registration struct {
	id string
}

func newRegistration() *registration {
	return &registration{id: uuid.New()}
}

func (r *registration) ID() string { return r.id }

func (r *registration) Unregister() {}
