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

package job

import (
	"time"

	"github.com/netsched/netsched/pkg/connmgr/network"
)

// BytesUnknown marks an upload/download/chunk estimate the job did not
// declare.
const BytesUnknown int64 = -1

// Priority is the scheduling tier of a job. Higher is more important.
type Priority int32

// Priority tiers.
const (
	PriorityMin     Priority = 100
	PriorityLow     Priority = 200
	PriorityDefault Priority = 300
	PriorityHigh    Priority = 400
	PriorityMax     Priority = 500
)

// Status is the connectivity controller's view of a single queued job. The
// declared fields are immutable once the job is enqueued; the runtime state
// block at the bottom is owned by the controller and mutated only under the
// controller lock. The execution engine reads SatisfiedBit/BoundNetwork when
// dispatching.
type Status struct {
	// ID uniquely identifies the job within the scheduler.
	ID string

	// OwnerID is the uid of the principal the job belongs to.
	OwnerID uint32

	// Required is the declared network requirement; nil means the job does
	// not need network at all and is ignored by the controller.
	Required *network.Request

	// EstimatedUploadBytes and EstimatedDownloadBytes are the job's declared
	// transfer size estimates, BytesUnknown if undeclared.
	EstimatedUploadBytes   int64
	EstimatedDownloadBytes int64

	// MinimumChunkBytes is the smallest useful transfer unit the job
	// declared, BytesUnknown if undeclared.
	MinimumChunkBytes int64

	// MaxExecutionTime is the job's maximum execution window.
	MaxExecutionTime time.Duration

	Priority  Priority
	Expedited bool
	Prefetch  bool

	// EnqueueTime is when the job entered the queue; Deadline is the latest
	// time the job should have run by, zero if none was declared.
	EnqueueTime time.Time
	Deadline    time.Time

	// Runtime state owned by the connectivity controller.

	// Tracked is set while the controller tracks this job.
	Tracked bool

	// Running is set while the execution engine runs this job.
	Running bool

	// SatisfiedBit is the current connectivity-constraint result.
	SatisfiedBit bool

	// BoundNetwork is the network the job should bind to when dispatched,
	// nil when the constraint is not satisfied.
	BoundNetwork *network.Descriptor
}

// RequiresNetwork reports whether the job declares any network requirement.
func (s *Status) RequiresNetwork() bool {
	return s.Required != nil
}

// EstimatedTotalBytes returns the sum of the known transfer estimates, or
// BytesUnknown if neither direction was declared.
func (s *Status) EstimatedTotalBytes() int64 {
	if s.EstimatedUploadBytes == BytesUnknown &&
		s.EstimatedDownloadBytes == BytesUnknown {
		return BytesUnknown
	}
	var total int64
	if s.EstimatedUploadBytes != BytesUnknown {
		total += s.EstimatedUploadBytes
	}
	if s.EstimatedDownloadBytes != BytesUnknown {
		total += s.EstimatedDownloadBytes
	}
	return total
}

// FractionRunTime returns how much of the job's allotted run-time window has
// elapsed at the given time, in [0, 1]. Jobs without a deadline are treated
// as having consumed none of their window.
func (s *Status) FractionRunTime(now time.Time) float64 {
	if s.Deadline.IsZero() {
		return 0
	}
	window := s.Deadline.Sub(s.EnqueueTime)
	if window <= 0 {
		return 1
	}
	elapsed := now.Sub(s.EnqueueTime)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= window {
		return 1
	}
	return float64(elapsed) / float64(window)
}
