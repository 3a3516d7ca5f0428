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

package stringset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testKey = "testKey"
)

func TestStringSet_New(t *testing.T) {
	testSet := New()
	assert.NotNil(t, testSet)
	assert.Zero(t, testSet.Size())
}

func TestStringSet_Add(t *testing.T) {
	testSet := &stringSet{
		m: make(map[string]bool),
	}
	testSet.Add(testKey)
	assert.Equal(t, true, testSet.m[testKey])
	assert.Equal(t, 1, testSet.Size())
}

func TestStringSet_Contains(t *testing.T) {
	testSet := &stringSet{
		m: make(map[string]bool),
	}
	assert.Equal(t, false, testSet.Contains(testKey))

	testSet.m[testKey] = true
	assert.Equal(t, true, testSet.Contains(testKey))
}

func TestStringSet_Remove(t *testing.T) {
	testSet := &stringSet{
		m: make(map[string]bool),
	}
	testSet.m[testKey] = true
	assert.Equal(t, true, testSet.m[testKey])

	testSet.Remove(testKey)
	assert.Equal(t, false, testSet.m[testKey])
	assert.Zero(t, testSet.Size())
}

func TestStringSet_Clear(t *testing.T) {
	testSet := New()
	testSet.Add("a")
	testSet.Add("b")
	assert.Equal(t, 2, testSet.Size())

	testSet.Clear()
	assert.Zero(t, testSet.Size())
	assert.False(t, testSet.Contains("a"))
}

func TestStringSet_ToSlice(t *testing.T) {
	testSet := New()
	testSet.Add("a")
	testSet.Add("b")
	assert.ElementsMatch(t, []string{"a", "b"}, testSet.ToSlice())
}
