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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `yaml:"name" validate:"nonzero"`
	Count int    `yaml:"count"`
	Debug bool   `yaml:"debug"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseSingleFile(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", "name: netsched\ncount: 3\n")

	var cfg testConfig
	require.NoError(t, Parse(&cfg, base))
	assert.Equal(t, "netsched", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestParseMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", "name: netsched\ncount: 3\n")
	override := writeFile(t, dir, "override.yaml", "count: 9\ndebug: true\n")

	var cfg testConfig
	require.NoError(t, Parse(&cfg, base, override))
	// Later files override, untouched fields survive.
	assert.Equal(t, "netsched", cfg.Name)
	assert.Equal(t, 9, cfg.Count)
	assert.True(t, cfg.Debug)
}

func TestParseNoFiles(t *testing.T) {
	var cfg testConfig
	assert.Error(t, Parse(&cfg))
}

func TestParseMissingFile(t *testing.T) {
	var cfg testConfig
	assert.Error(t, Parse(&cfg, "/nonexistent/config.yaml"))
}

func TestParseInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "name: [unclosed\n")

	var cfg testConfig
	assert.Error(t, Parse(&cfg, bad))
}

func TestParseValidation(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.yaml", "count: 1\n")

	var cfg testConfig
	err := Parse(&cfg, empty)
	require.Error(t, err)

	verr, ok := err.(ValidationError)
	require.True(t, ok)
	assert.Error(t, verr.ErrForField("Name"))
	assert.Contains(t, verr.Error(), "validation failed")
}
