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
	"github.com/netsched/netsched/pkg/connmgr/network"
)

// eventType enumerates the asynchronous events the controller reacts to.
// Each variant maps 1:1 to a handler method on the controller.
type eventType int32

const (
	eventNetworkAvailable eventType = iota
	eventNetworkCapabilitiesChanged
	eventNetworkLost
	eventDefaultNetworkChanged
	eventSignalStrengthChanged
	eventOwnerImportanceChanged
	eventOwnerRemoved
)

var eventTypeNames = map[eventType]string{
	eventNetworkAvailable:           "NETWORK_AVAILABLE",
	eventNetworkCapabilitiesChanged: "NETWORK_CAPABILITIES_CHANGED",
	eventNetworkLost:                "NETWORK_LOST",
	eventDefaultNetworkChanged:      "DEFAULT_NETWORK_CHANGED",
	eventSignalStrengthChanged:      "SIGNAL_STRENGTH_CHANGED",
	eventOwnerImportanceChanged:     "OWNER_IMPORTANCE_CHANGED",
	eventOwnerRemoved:               "OWNER_REMOVED",
}

func (e eventType) String() string {
	if name, ok := eventTypeNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

// event is the single payload type funneled into the controller's event
// entry point. Only the fields relevant to the event type are set.
type event struct {
	kind eventType

	network      *network.Descriptor
	capabilities *network.CapabilitySnapshot

	ownerID        uint32
	blockedReasons uint32
	importance     Importance

	subscriptionID int32
	signalLevel    network.SignalLevel
}
