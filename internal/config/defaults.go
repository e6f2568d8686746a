package config

import "time"

const (
	DefaultSource     = "docs/common-requirements.md"
	DefaultTargetName = "SKILL.md"
	DefaultDebounce   = 300 * time.Millisecond
)

// DefaultRoots are the skill directories of the repository.
var DefaultRoots = []string{"exa-core", "exa-websets", "exa-research"}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if len(cfg.Roots) == 0 {
		cfg.Roots = append([]string(nil), DefaultRoots...)
	}
	if cfg.TargetName == "" {
		cfg.TargetName = DefaultTargetName
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
}
