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
	"fmt"

	"github.com/pkg/errors"

	"github.com/netsched/netsched/pkg/connmgr/network"
	"github.com/netsched/netsched/pkg/connmgr/satisfier"
)

// Lightweight in-package fakes for the collaborator interfaces. The gomock
// mocks in pkg/connmgr/mocks cannot be used from these tests without an
// import cycle.

type fakeRegistration struct {
	id           string
	unregistered bool
}

func (r *fakeRegistration) ID() string  { return r.id }
func (r *fakeRegistration) Unregister() { r.unregistered = true }

type fakeNetworkProvider struct {
	registrations map[uint32]*fakeRegistration
	registerCalls int
	failOwners    map[uint32]bool

	capabilities map[*network.Descriptor]*network.CapabilitySnapshot
	quota        int64
}

func newFakeNetworkProvider() *fakeNetworkProvider {
	return &fakeNetworkProvider{
		registrations: make(map[uint32]*fakeRegistration),
		failOwners:    make(map[uint32]bool),
		capabilities:  make(map[*network.Descriptor]*network.CapabilitySnapshot),
	}
}

func (p *fakeNetworkProvider) RegisterNetworkObserver() (Registration, error) {
	return &fakeRegistration{id: "general"}, nil
}

func (p *fakeNetworkProvider) RegisterDefaultNetworkObserver(ownerID uint32) (Registration, error) {
	p.registerCalls++
	if p.failOwners[ownerID] {
		return nil, errors.New("provider unavailable")
	}
	r := &fakeRegistration{id: fmt.Sprintf("owner-%d", ownerID)}
	p.registrations[ownerID] = r
	return r, nil
}

func (p *fakeNetworkProvider) Capabilities(n *network.Descriptor) *network.CapabilitySnapshot {
	return p.capabilities[n]
}

func (p *fakeNetworkProvider) OpportunisticQuotaBytes(*network.Descriptor, uint32) int64 {
	return p.quota
}

type fakePowerPolicy struct {
	requests map[uint32]int
	revokes  map[uint32]int

	restricted map[uint32]bool
	importance map[uint32]Importance
	device     satisfier.DeviceState
}

func newFakePowerPolicy() *fakePowerPolicy {
	return &fakePowerPolicy{
		requests:   make(map[uint32]int),
		revokes:    make(map[uint32]int),
		restricted: make(map[uint32]bool),
		importance: make(map[uint32]Importance),
	}
}

func (p *fakePowerPolicy) RequestStandbyException(ownerID uint32) { p.requests[ownerID]++ }
func (p *fakePowerPolicy) RevokeStandbyException(ownerID uint32)  { p.revokes[ownerID]++ }
func (p *fakePowerPolicy) IsOwnerRestricted(ownerID uint32) bool  { return p.restricted[ownerID] }

func (p *fakePowerPolicy) OwnerImportance(ownerID uint32) Importance {
	if imp, ok := p.importance[ownerID]; ok {
		return imp
	}
	return ImportanceCached
}

func (p *fakePowerPolicy) DeviceState() satisfier.DeviceState { return p.device }

type fakeTelephony struct {
	levels        map[int32]network.SignalLevel
	registrations map[int32]*fakeRegistration
	failSubs      map[int32]bool
}

func newFakeTelephony() *fakeTelephony {
	return &fakeTelephony{
		levels:        make(map[int32]network.SignalLevel),
		registrations: make(map[int32]*fakeRegistration),
		failSubs:      make(map[int32]bool),
	}
}

func (t *fakeTelephony) RegisterSignalObserver(subscriptionID int32) (Registration, error) {
	if t.failSubs[subscriptionID] {
		return nil, errors.New("telephony unavailable")
	}
	r := &fakeRegistration{id: fmt.Sprintf("sub-%d", subscriptionID)}
	t.registrations[subscriptionID] = r
	return r, nil
}

func (t *fakeTelephony) SignalLevel(subscriptionID int32) network.SignalLevel {
	return t.levels[subscriptionID]
}
