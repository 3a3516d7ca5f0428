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

// Request is a job's declared network requirement: all listed capabilities
// must be present, and at least one of the listed transports (an empty
// transport list matches any transport). Requests are value objects; the
// With/Without helpers return copies.
type Request struct {
	transports   []Transport
	capabilities []Capability
}

// NewRequest builds a network requirement from the given transports and
// capabilities. The input slices are copied.
func NewRequest(transports []Transport, capabilities []Capability) *Request {
	r := &Request{}
	r.transports = append(r.transports, transports...)
	r.capabilities = append(r.capabilities, capabilities...)
	return r
}

// HasCapability checks whether the request requires the given capability.
func (r *Request) HasCapability(c Capability) bool {
	for _, rc := range r.capabilities {
		if rc == c {
			return true
		}
	}
	return false
}

// WithCapability returns a copy of the request that additionally requires
// the given capability.
func (r *Request) WithCapability(c Capability) *Request {
	out := NewRequest(r.transports, r.capabilities)
	if !out.HasCapability(c) {
		out.capabilities = append(out.capabilities, c)
	}
	return out
}

// WithoutCapability returns a copy of the request with the given capability
// requirement stripped.
func (r *Request) WithoutCapability(c Capability) *Request {
	out := &Request{}
	out.transports = append(out.transports, r.transports...)
	for _, rc := range r.capabilities {
		if rc != c {
			out.capabilities = append(out.capabilities, rc)
		}
	}
	return out
}

// SatisfiedBy reports whether the given capability snapshot can satisfy this
// request. A nil snapshot satisfies nothing.
func (r *Request) SatisfiedBy(caps *CapabilitySnapshot) bool {
	if caps == nil {
		return false
	}
	for _, rc := range r.capabilities {
		if !caps.HasCapability(rc) {
			return false
		}
	}
	if len(r.transports) == 0 {
		return true
	}
	for _, rt := range r.transports {
		if caps.HasTransport(rt) {
			return true
		}
	}
	return false
}
