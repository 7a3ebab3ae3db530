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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cybrota/avlkit/keyset"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type DisplayConfig struct {
	ShowHeights bool `yaml:"show_heights"`
	Color       bool `yaml:"color"`
}

type FilterConfig struct {
	Size   uint `yaml:"size"`
	Hashes uint `yaml:"hashes"`
}

type LoadingConfig struct {
	ProgressThreshold int `yaml:"progress_threshold"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Filter  FilterConfig  `yaml:"filter"`
	Load    LoadingConfig `yaml:"load"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		ShowHeights: false,
		Color:       true,
	},
	Filter: FilterConfig{
		Size:   keyset.DefaultFilterSize,
		Hashes: keyset.DefaultFilterHashes,
	},
	Load: LoadingConfig{
		ProgressThreshold: 5000,
	},
}

// appFs is swapped for an in-memory filesystem in tests.
var appFs = afero.NewOsFs()

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlkit.yaml. A missing file yields the defaults
// with no error; an unreadable or malformed one yields the defaults and
// the reason, so callers can log it and carry on.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(appFs, configPath)
}

func loadConfigFrom(fs afero.Fs, configPath string) (*Config, error) {
	config := defaultConfig

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, errors.Wrapf(err, "reading %s", configPath)
	}

	// fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig
		return &config, errors.Wrapf(err, "parsing %s", configPath)
	}

	return &config, nil
}

func createDefaultConfigFile(fs afero.Fs, configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := afero.WriteFile(fs, configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func displaySettings(w io.Writer, fs afero.Fs, configPath string) error {
	configExists, err := afero.Exists(fs, configPath)
	if err != nil {
		return errors.Wrap(err, "failed to check config path")
	}

	if !configExists {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(fs, configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(fs, configPath)
	if err != nil {
		fmt.Fprintf(w, "⚠️  %v. Showing default settings.\n\n", err)
	}

	fmt.Fprintf(w, "🔧 avlkit Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sshow_heights%s: %t\n", Green, Reset, config.Display.ShowHeights)
	fmt.Fprintf(w, "    Append the stored height to every node in tree dumps\n")
	fmt.Fprintf(w, "  • %scolor%s: %t\n", Green, Reset, config.Display.Color)
	fmt.Fprintf(w, "    Colour tree dumps by child position\n\n")

	fmt.Fprintf(w, "🔍 %sMembership filter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %ssize%s: %d bits\n", Green, Reset, config.Filter.Size)
	fmt.Fprintf(w, "  • %shashes%s: %d\n\n", Green, Reset, config.Filter.Hashes)

	fmt.Fprintf(w, "📥 %sLoading:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sprogress_threshold%s: %d keys\n", Green, Reset, config.Load.ProgressThreshold)
	fmt.Fprintf(w, "    Show a progress bar when inserting at least this many keys\n\n")

	fmt.Fprintf(w, "💡 Edit %s to change these values.\n", configPath)
	return nil
}
