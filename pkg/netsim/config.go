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
	"time"

	"github.com/pkg/errors"

	"github.com/netsched/netsched/pkg/connmgr"
	"github.com/netsched/netsched/pkg/connmgr/network"
)

// Config describes a scripted world for the simulator: the networks that
// come up, the owners and their jobs, and the scripted signal levels.
type Config struct {
	Controller connmgr.Config `yaml:"controller"`

	Networks []NetworkConfig `yaml:"networks"`
	Owners   []OwnerConfig   `yaml:"owners"`
	Jobs     []JobConfig     `yaml:"jobs" validate:"nonzero"`

	// Signals maps subscription id to the scripted signal level name.
	Signals map[int32]string `yaml:"signals"`

	// QuotaBytes is the opportunistic data allowance reported for every
	// owner on every network.
	QuotaBytes int64 `yaml:"quota_bytes"`

	// DumpInterval is how often the simulator logs a controller snapshot.
	DumpInterval time.Duration `yaml:"dump_interval"`
}

// NetworkConfig scripts one network.
type NetworkConfig struct {
	Name           string   `yaml:"name" validate:"nonzero"`
	Transports     []string `yaml:"transports"`
	Capabilities   []string `yaml:"capabilities"`
	UpstreamKbps   int64    `yaml:"upstream_kbps"`
	DownstreamKbps int64    `yaml:"downstream_kbps"`
	Subscriptions  []int32  `yaml:"subscriptions"`

	// DefaultFor lists the owner ids whose default network this is.
	DefaultFor []uint32 `yaml:"default_for"`
}

// OwnerConfig scripts one owner.
type OwnerConfig struct {
	ID         uint32 `yaml:"id" validate:"nonzero"`
	Importance string `yaml:"importance"`
	Restricted bool   `yaml:"restricted"`
}

// JobConfig scripts one queued job.
type JobConfig struct {
	ID    string `yaml:"id" validate:"nonzero"`
	Owner uint32 `yaml:"owner" validate:"nonzero"`

	Transports   []string `yaml:"transports"`
	Capabilities []string `yaml:"capabilities"`

	Priority  int32 `yaml:"priority"`
	Expedited bool  `yaml:"expedited"`
	Prefetch  bool  `yaml:"prefetch"`

	UploadBytes   int64 `yaml:"upload_bytes"`
	DownloadBytes int64 `yaml:"download_bytes"`
	MinChunkBytes int64 `yaml:"min_chunk_bytes"`

	MaxExecution time.Duration `yaml:"max_execution"`

	// Age is how long ago the job was enqueued; Window is the run-time
	// window from enqueue to deadline (zero means no deadline).
	Age    time.Duration `yaml:"age"`
	Window time.Duration `yaml:"window"`
}

var transportValues = map[string]network.Transport{
	"CELLULAR":  network.TransportCellular,
	"WIFI":      network.TransportWiFi,
	"ETHERNET":  network.TransportEthernet,
	"BLUETOOTH": network.TransportBluetooth,
	"VPN":       network.TransportVPN,
}

var capabilityValues = map[string]network.Capability{
	"INTERNET":      network.CapabilityInternet,
	"NOT_METERED":   network.CapabilityNotMetered,
	"NOT_CONGESTED": network.CapabilityNotCongested,
	"NOT_SUSPENDED": network.CapabilityNotSuspended,
	"NOT_ROAMING":   network.CapabilityNotRoaming,
	"VALIDATED":     network.CapabilityValidated,
}

var signalValues = map[string]network.SignalLevel{
	"NONE":     network.SignalNoneOrUnknown,
	"POOR":     network.SignalPoor,
	"MODERATE": network.SignalModerate,
	"GOOD":     network.SignalGood,
	"GREAT":    network.SignalGreat,
}

var importanceValues = map[string]connmgr.Importance{
	"CACHED":             connmgr.ImportanceCached,
	"BACKGROUND":         connmgr.ImportanceBackground,
	"SERVICE":            connmgr.ImportanceService,
	"FOREGROUND_SERVICE": connmgr.ImportanceForegroundService,
	"FOREGROUND":         connmgr.ImportanceForeground,
	"TOP":                connmgr.ImportanceTop,
}

func parseTransports(names []string) ([]network.Transport, error) {
	var out []network.Transport
	for _, name := range names {
		t, ok := transportValues[name]
		if !ok {
			return nil, errors.Errorf("unknown transport %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseCapabilities(names []string) ([]network.Capability, error) {
	var out []network.Capability
	for _, name := range names {
		c, ok := capabilityValues[name]
		if !ok {
			return nil, errors.Errorf("unknown capability %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseSignalLevel(name string) (network.SignalLevel, error) {
	level, ok := signalValues[name]
	if !ok {
		return network.SignalNoneOrUnknown, errors.Errorf(
			"unknown signal level %q", name)
	}
	return level, nil
}

func parseImportance(name string) (connmgr.Importance, error) {
	if name == "" {
		return connmgr.ImportanceCached, nil
	}
	imp, ok := importanceValues[name]
	if !ok {
		return connmgr.ImportanceCached, errors.Errorf(
			"unknown importance %q", name)
	}
	return imp, nil
}
