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

package background

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/uber-go/atomic"
)

type WorkManagerTestSuite struct {
	suite.Suite
}

func TestWorkManagerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkManagerTestSuite))
}

func (suite *WorkManagerTestSuite) TestMultipleWorksStartStop() {
	v1 := atomic.Int64{}
	v2 := atomic.Int64{}

	manager := NewManager()
	err := manager.RegisterWorks(
		Work{
			Name:   "update_v1",
			Period: time.Millisecond,
			Func: func(_ *atomic.Bool) {
				v1.Inc()
			},
		},
		Work{
			Name:   "update_v2",
			Period: time.Millisecond,
			Func: func(_ *atomic.Bool) {
				v2.Inc()
			},
			InitialDelay: time.Millisecond * 100,
		},
	)

	suite.NoError(err)
	time.Sleep(time.Millisecond * 30)
	suite.Zero(v1.Load())
	suite.Zero(v2.Load())

	manager.Start()
	time.Sleep(time.Millisecond * 30)
	suite.NotZero(v1.Load())
	suite.Zero(v2.Load())

	time.Sleep(time.Millisecond * 100)
	suite.NotZero(v1.Load())
	suite.NotZero(v2.Load())

	manager.Stop()
	time.Sleep(time.Millisecond * 30)
	stop1 := v1.Load()
	stop2 := v2.Load()
	time.Sleep(time.Millisecond * 30)
	suite.Equal(stop1, v1.Load())
	suite.Equal(stop2, v2.Load())
}

func (suite *WorkManagerTestSuite) TestRegisterWorksRejectsBadWork() {
	manager := NewManager()
	suite.Equal(errEmptyName, manager.RegisterWorks(Work{
		Period: time.Millisecond,
		Func:   func(_ *atomic.Bool) {},
	}))

	suite.NoError(manager.RegisterWorks(Work{
		Name:   "dup",
		Period: time.Millisecond,
		Func:   func(_ *atomic.Bool) {},
	}))
	suite.Equal(errDuplicateName, manager.RegisterWorks(Work{
		Name:   "dup",
		Period: time.Millisecond,
		Func:   func(_ *atomic.Bool) {},
	}))
}

func (suite *WorkManagerTestSuite) TestDoubleStartIsNoop() {
	v := atomic.Int64{}
	manager := NewManager()
	suite.NoError(manager.RegisterWorks(Work{
		Name:   "count",
		Period: time.Millisecond * 5,
		Func: func(_ *atomic.Bool) {
			v.Inc()
		},
	}))

	manager.Start()
	manager.Start()
	time.Sleep(time.Millisecond * 30)
	manager.Stop()

	// A second start must not spawn a second runner; counts roughly match
	// one ticker.
	suite.NotZero(v.Load())
}
