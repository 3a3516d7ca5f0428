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
	log "github.com/sirupsen/logrus"

	"github.com/netsched/netsched/pkg/connmgr/network"
)

// signalCache tracks the last known signal level per cellular subscription.
// A telephony observer is held for a subscription while at least one
// available network references it. All methods are called with the
// controller lock held.
type signalCache struct {
	telephony Telephony
	metrics   *Metrics

	levels        map[int32]network.SignalLevel
	registrations map[int32]Registration

	// refs counts how many available networks reference each subscription.
	refs map[int32]int
}

func newSignalCache(telephony Telephony, metrics *Metrics) *signalCache {
	return &signalCache{
		telephony:     telephony,
		metrics:       metrics,
		levels:        make(map[int32]network.SignalLevel),
		registrations: make(map[int32]Registration),
		refs:          make(map[int32]int),
	}
}

// retain bumps the reference count for each subscription, subscribing to
// the telephony collaborator the first time a subscription appears.
func (s *signalCache) retain(subscriptionIDs []int32) {
	for _, subID := range subscriptionIDs {
		s.refs[subID]++
		if s.refs[subID] > 1 {
			continue
		}

		s.levels[subID] = s.telephony.SignalLevel(subID)
		registration, err := s.telephony.RegisterSignalObserver(subID)
		if err != nil {
			// Keep the cached level; periodic reevaluation refreshes it.
			log.WithField("subscription_id", subID).
				WithError(err).
				Error("Unable to register signal strength observer")
			continue
		}
		s.registrations[subID] = registration
		s.metrics.SignalSubscriptions.Update(float64(len(s.refs)))
	}
}

// release drops the reference count for each subscription, unsubscribing
// once no remaining network references it.
func (s *signalCache) release(subscriptionIDs []int32) {
	for _, subID := range subscriptionIDs {
		count, ok := s.refs[subID]
		if !ok {
			log.WithField("subscription_id", subID).
				Error("Releasing untracked signal subscription")
			continue
		}
		if count > 1 {
			s.refs[subID] = count - 1
			continue
		}

		delete(s.refs, subID)
		delete(s.levels, subID)
		if registration, ok := s.registrations[subID]; ok {
			registration.Unregister()
			delete(s.registrations, subID)
		}
		s.metrics.SignalSubscriptions.Update(float64(len(s.refs)))
	}
}

// update records a new signal level, returning whether anything changed.
// Reports for untracked subscriptions are dropped.
func (s *signalCache) update(subscriptionID int32, level network.SignalLevel) bool {
	if _, ok := s.refs[subscriptionID]; !ok {
		return false
	}
	if s.levels[subscriptionID] == level {
		return false
	}
	s.levels[subscriptionID] = level
	return true
}

// best returns the strongest known signal level across the given
// subscriptions.
func (s *signalCache) best(subscriptionIDs []int32) network.SignalLevel {
	best := network.SignalNoneOrUnknown
	for _, subID := range subscriptionIDs {
		if level, ok := s.levels[subID]; ok && level > best {
			best = level
		}
	}
	return best
}

// unregisterAll drops every telephony registration, used on controller
// shutdown.
func (s *signalCache) unregisterAll() {
	for subID, registration := range s.registrations {
		registration.Unregister()
		delete(s.registrations, subID)
	}
}
