// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "laddergame.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
dictionary:
  path: /tmp/words.txt
  max_word_length: 8
search:
  seed: 42
  max_enqueues: 1000
cache:
  enabled: false
  expiration: 90s
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.txt", config.Dictionary.Path)
	assert.Equal(t, 8, config.Dictionary.MaxWordLength)
	assert.Equal(t, int64(42), config.Search.Seed)
	assert.Equal(t, 1000, config.Search.MaxEnqueues)
	assert.False(t, config.Cache.Enabled)
	assert.Equal(t, 90*time.Second, config.Cache.Expiration)
	// sections left out keep their defaults
	assert.True(t, config.UI.ShowProgress)
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	path := writeConfig(t, `
dictionary:
  max_word_length: 1
search:
  max_enqueues: -5
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 15, config.Dictionary.MaxWordLength)
	assert.Equal(t, 0, config.Search.MaxEnqueues)
}

func TestLoadConfigParseError(t *testing.T) {
	path := writeConfig(t, "dictionary: [not, a, map")

	config, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
	assert.Equal(t, DefaultConfig(), config)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.yaml")

	var out bytes.Buffer
	displaySettings(&out, path)

	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Created default configuration")
	assert.Contains(t, out.String(), "max_word_length")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}
