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

package network

import (
	"fmt"

	"github.com/pborman/uuid"
)

// Transport is the physical or virtual transport a network rides on.
type Transport int32

// Known transports.
const (
	TransportCellular Transport = iota
	TransportWiFi
	TransportEthernet
	TransportBluetooth
	TransportVPN
)

var transportNames = map[Transport]string{
	TransportCellular:  "CELLULAR",
	TransportWiFi:      "WIFI",
	TransportEthernet:  "ETHERNET",
	TransportBluetooth: "BLUETOOTH",
	TransportVPN:       "VPN",
}

func (t Transport) String() string {
	if name, ok := transportNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TRANSPORT_%d", int32(t))
}

// Capability is a boolean property a network may carry.
type Capability int32

// Known capabilities.
const (
	CapabilityInternet Capability = iota
	CapabilityNotMetered
	CapabilityNotCongested
	CapabilityNotSuspended
	CapabilityNotRoaming
	CapabilityValidated
)

var capabilityNames = map[Capability]string{
	CapabilityInternet:     "INTERNET",
	CapabilityNotMetered:   "NOT_METERED",
	CapabilityNotCongested: "NOT_CONGESTED",
	CapabilityNotSuspended: "NOT_SUSPENDED",
	CapabilityNotRoaming:   "NOT_ROAMING",
	CapabilityValidated:    "VALIDATED",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CAPABILITY_%d", int32(c))
}

// SignalLevel is the coarse cellular signal strength bucket reported by the
// telephony collaborator, ordered weakest first.
type SignalLevel int32

// Signal levels.
const (
	SignalNoneOrUnknown SignalLevel = iota
	SignalPoor
	SignalModerate
	SignalGood
	SignalGreat
)

// Descriptor is an opaque handle to a live network. Equality is by identity:
// two descriptors refer to the same network iff they are the same pointer.
// A descriptor may refer to a network that has already gone away.
type Descriptor struct {
	id   string
	name string
}

// NewDescriptor creates a descriptor for a live network. The name is only
// used for logging and diagnostics.
func NewDescriptor(name string) *Descriptor {
	return &Descriptor{
		id:   uuid.New(),
		name: name,
	}
}

// ID returns the unique id of the network handle.
func (d *Descriptor) ID() string {
	return d.id
}

// Name returns the diagnostic name of the network.
func (d *Descriptor) Name() string {
	return d.name
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.name, d.id)
}
