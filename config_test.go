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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testConfigPath = "/home/user/.avlkit.yaml"

func TestLoadConfigMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	config, err := loadConfigFrom(fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigPartialFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := []byte("display:\n  show_heights: true\nfilter:\n  size: 1024\n")
	require.NoError(t, afero.WriteFile(fs, testConfigPath, data, 0644))

	config, err := loadConfigFrom(fs, testConfigPath)
	require.NoError(t, err)
	assert.True(t, config.Display.ShowHeights)
	assert.True(t, config.Display.Color, "absent fields keep defaults")
	assert.Equal(t, uint(1024), config.Filter.Size)
	assert.Equal(t, defaultConfig.Filter.Hashes, config.Filter.Hashes)
	assert.Equal(t, defaultConfig.Load.ProgressThreshold, config.Load.ProgressThreshold)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("display: [unclosed"), 0644))

	config, err := loadConfigFrom(fs, testConfigPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing "+testConfigPath)
	require.NotNil(t, config)
	assert.Equal(t, defaultConfig, *config)
}

func TestCreateDefaultConfigFileRoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, createDefaultConfigFile(fs, testConfigPath))

	data, err := afero.ReadFile(fs, testConfigPath)
	require.NoError(t, err)

	var written Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, defaultConfig, written)
}

func TestDisplaySettingsCreatesConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	require.NoError(t, displaySettings(&out, fs, testConfigPath))

	exists, err := afero.Exists(fs, testConfigPath)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, out.String(), "Created default configuration")
	assert.Contains(t, out.String(), "(newly created)")
	assert.Contains(t, out.String(), "progress_threshold")

	// second run reads the file that is now there
	out.Reset()
	require.NoError(t, displaySettings(&out, fs, testConfigPath))
	assert.NotContains(t, out.String(), "Created default configuration")
	assert.Contains(t, out.String(), "Config file: "+testConfigPath+"\n")
}

func TestDisplaySettingsMalformedConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("display: 5"), 0644))
	var out bytes.Buffer

	require.NoError(t, displaySettings(&out, fs, testConfigPath))
	assert.Contains(t, out.String(), "Showing default settings")
}
