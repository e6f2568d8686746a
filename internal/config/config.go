package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up at the repository root.
const DefaultFileName = ".inline-requirements.yaml"

// Config describes where the common requirements live and which skill
// documents receive them. Paths are relative to the repository root.
type Config struct {
	// Source is the common requirements document.
	Source string `yaml:"source"`
	// Roots are the directories searched for target documents.
	Roots []string `yaml:"roots"`
	// TargetName is the reserved file name of target documents.
	TargetName string      `yaml:"target_name"`
	Watch      WatchConfig `yaml:"watch,omitempty"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Load reads the configuration file at path, normalizes it, fills defaults
// and validates the result.
//
// A missing file is not an error when optional is true; defaults are returned.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}
