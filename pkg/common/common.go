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

package common

const (
	// NetschedSim is the name of the simulator daemon.
	NetschedSim = "netsched-sim"

	// ConnectivityManager is the component name of the connectivity
	// constraint controller, used for metric scopes and log fields.
	ConnectivityManager = "connmgr"

	// AppLogField is the log field key carrying the application name.
	AppLogField = "app"
)
