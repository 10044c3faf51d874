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
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/laddergame/ladder"
)

const defaultConfigPath = "~/.laddergame.yaml"

type DictionaryConfig struct {
	Path          string `yaml:"path"`
	MaxWordLength int    `yaml:"max_word_length"`
}

type SearchConfig struct {
	// Seed feeds the dictionary shuffle; 0 seeds from the clock.
	Seed        int64 `yaml:"seed"`
	MaxEnqueues int   `yaml:"max_enqueues"`
}

type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Expiration time.Duration `yaml:"expiration"`
}

type UIConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Cache      CacheConfig      `yaml:"cache"`
	UI         UIConfig         `yaml:"ui"`
}

var defaultConfig = Config{
	Dictionary: DictionaryConfig{
		Path:          "dictionary.txt",
		MaxWordLength: ladder.DefaultMaxWordLength,
	},
	Search: SearchConfig{
		Seed:        0,
		MaxEnqueues: 2_000_000,
	},
	Cache: CacheConfig{
		Enabled:    true,
		Expiration: ladderCacheExpiration,
	},
	UI: UIConfig{
		ShowProgress: true,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

func getConfigPath(override string) (string, error) {
	if override == "" {
		override = defaultConfigPath
	}
	return homedir.Expand(override)
}

// LoadConfig reads the YAML config at path (the default location when empty).
// A missing or unreadable file yields the defaults; a malformed one is an error
// the caller may choose to log and ignore.
func LoadConfig(path string) (*Config, error) {
	configPath, err := getConfigPath(path)
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	config.normalize()

	return config, nil
}

// normalize fills zero values that would make the solver unusable.
func (c *Config) normalize() {
	if c.Dictionary.MaxWordLength <= 1 {
		c.Dictionary.MaxWordLength = ladder.DefaultMaxWordLength
	}
	if c.Search.MaxEnqueues < 0 {
		c.Search.MaxEnqueues = 0
	}
	if c.Cache.Expiration <= 0 {
		c.Cache.Expiration = ladderCacheExpiration
	}
	if p, err := homedir.Expand(c.Dictionary.Path); err == nil {
		c.Dictionary.Path = p
	}
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer, override string) {
	configPath, err := getConfigPath(override)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 Laddergame Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "📖 %sDictionary:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %spath%s: %s\n", Green, Reset, config.Dictionary.Path)
	fmt.Fprintf(w, "  • %smax_word_length%s: %d (words must be shorter)\n\n", Green, Reset, config.Dictionary.MaxWordLength)

	fmt.Fprintf(w, "🔍 %sSearch:%s\n", Green, Reset)
	seedDesc := fmt.Sprintf("%d (reproducible shuffles)", config.Search.Seed)
	if config.Search.Seed == 0 {
		seedDesc = "0 (random shuffle on every run)"
	}
	fmt.Fprintf(w, "  • %sseed%s: %s\n", Green, Reset, seedDesc)
	budgetDesc := fmt.Sprintf("%d", config.Search.MaxEnqueues)
	if config.Search.MaxEnqueues == 0 {
		budgetDesc = "0 (unlimited)"
	}
	fmt.Fprintf(w, "  • %smax_enqueues%s: %s (A* only)\n\n", Green, Reset, budgetDesc)

	fmt.Fprintf(w, "🗄  %sCache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %senabled%s: %t\n", Green, Reset, config.Cache.Enabled)
	fmt.Fprintf(w, "  • %sexpiration%s: %s\n\n", Green, Reset, config.Cache.Expiration)

	fmt.Fprintf(w, "🖥  %sUI:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sshow_progress%s: %t\n\n", Green, Reset, config.UI.ShowProgress)
}
