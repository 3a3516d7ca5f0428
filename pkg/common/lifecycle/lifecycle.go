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

package lifecycle

import (
	"sync"
)

// LifeCycle manages the start/stop lifecycle for the owner of the object.
// Typical usage:
//
//	lc := NewLifeCycle()
//	lc.Start()
//	go func() {
//		defer lc.StopComplete()
//		<-lc.StopCh()
//	}()
//	lc.Stop() // broadcast stop
//	lc.Wait() // block until the goroutine confirms
type LifeCycle interface {
	// Start is idempotent; returns false if already started.
	Start() bool
	// Stop is idempotent; returns false if already stopped.
	Stop() bool
	// StopComplete is called by the owner once cleanup has finished.
	// It unblocks Wait.
	StopComplete()
	// StopCh broadcasts the stop message once Stop is called.
	StopCh() <-chan struct{}
	// Wait blocks until StopComplete is called.
	Wait()
}

type lifeCycle struct {
	sync.RWMutex
	// stopCh is non-nil between Start and Stop.
	stopCh         chan struct{}
	stopCompleteCh chan struct{}
}

// NewLifeCycle creates a new LifeCycle instance.
func NewLifeCycle() LifeCycle {
	return &lifeCycle{
		stopCompleteCh: make(chan struct{}, 1),
	}
}

func (l *lifeCycle) Start() bool {
	l.Lock()
	defer l.Unlock()

	if l.stopCh != nil {
		return false
	}

	l.stopCh = make(chan struct{})
	return true
}

func (l *lifeCycle) Stop() bool {
	l.Lock()
	defer l.Unlock()

	if l.stopCh == nil {
		return false
	}

	close(l.stopCh)
	l.stopCh = nil
	return true
}

func (l *lifeCycle) StopCh() <-chan struct{} {
	l.RLock()
	defer l.RUnlock()

	// Stop may already have been called by the time a goroutine asks for
	// the channel. Hand back a closed channel so the caller unblocks.
	if l.stopCh == nil {
		closedCh := make(chan struct{})
		close(closedCh)
		return closedCh
	}

	return l.stopCh
}

func (l *lifeCycle) StopComplete() {
	l.RLock()
	defer l.RUnlock()

	select {
	case l.stopCompleteCh <- struct{}{}:
	default:
		// StopComplete already called, nothing to do.
	}
}

func (l *lifeCycle) Wait() {
	<-l.stopCompleteCh
}
