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
	"sort"
	"strings"
)

// CapabilitySnapshot is an immutable view of a network's capabilities at a
// point in time. Snapshots are safe to read without holding any lock; a new
// snapshot is published whenever the network changes.
type CapabilitySnapshot struct {
	transports   map[Transport]bool
	capabilities map[Capability]bool

	// Link bandwidth estimates in kbps; 0 means unknown.
	upstreamKbps   int64
	downstreamKbps int64

	// Cellular subscription ids backing this network, if any.
	subscriptionIDs []int32
}

// NewCapabilitySnapshot builds an immutable capability snapshot. The input
// slices are copied.
func NewCapabilitySnapshot(
	transports []Transport,
	capabilities []Capability,
	upstreamKbps int64,
	downstreamKbps int64,
	subscriptionIDs []int32,
) *CapabilitySnapshot {
	s := &CapabilitySnapshot{
		transports:     make(map[Transport]bool),
		capabilities:   make(map[Capability]bool),
		upstreamKbps:   upstreamKbps,
		downstreamKbps: downstreamKbps,
	}
	for _, t := range transports {
		s.transports[t] = true
	}
	for _, c := range capabilities {
		s.capabilities[c] = true
	}
	s.subscriptionIDs = append(s.subscriptionIDs, subscriptionIDs...)
	return s
}

// HasTransport checks whether the network uses the given transport.
func (s *CapabilitySnapshot) HasTransport(t Transport) bool {
	return s.transports[t]
}

// HasCapability checks whether the network carries the given capability.
func (s *CapabilitySnapshot) HasCapability(c Capability) bool {
	return s.capabilities[c]
}

// UpstreamKbps returns the upstream link bandwidth estimate, 0 if unknown.
func (s *CapabilitySnapshot) UpstreamKbps() int64 {
	return s.upstreamKbps
}

// DownstreamKbps returns the downstream link bandwidth estimate, 0 if unknown.
func (s *CapabilitySnapshot) DownstreamKbps() int64 {
	return s.downstreamKbps
}

// SubscriptionIDs returns a copy of the cellular subscription ids backing
// this network.
func (s *CapabilitySnapshot) SubscriptionIDs() []int32 {
	ids := make([]int32, len(s.subscriptionIDs))
	copy(ids, s.subscriptionIDs)
	return ids
}

func (s *CapabilitySnapshot) String() string {
	var transports, capabilities []string
	for t := range s.transports {
		transports = append(transports, t.String())
	}
	for c := range s.capabilities {
		capabilities = append(capabilities, c.String())
	}
	sort.Strings(transports)
	sort.Strings(capabilities)
	return fmt.Sprintf("transports:[%s] capabilities:[%s] up:%dkbps down:%dkbps",
		strings.Join(transports, ","),
		strings.Join(capabilities, ","),
		s.upstreamKbps,
		s.downstreamKbps)
}
