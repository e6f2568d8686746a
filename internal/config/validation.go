package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrEscapesRoot     = errors.New("path must stay inside the repository root")
	ErrInvalidTarget   = errors.New("target_name must be a plain file name")
	ErrInvalidDebounce = errors.New("watch.debounce must not be negative")
)

// Validate checks that all paths are repository-relative and usable.
func (c *Config) Validate() error {
	if err := validateRelative("source", c.Source); err != nil {
		return err
	}
	if len(c.Roots) == 0 {
		return errors.New("at least one root is required")
	}
	for _, r := range c.Roots {
		if err := validateRelative("roots", r); err != nil {
			return err
		}
	}
	if c.TargetName == "" || c.TargetName != filepath.Base(c.TargetName) || c.TargetName == "." || c.TargetName == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, c.TargetName)
	}
	if c.Watch.Debounce < 0 {
		return ErrInvalidDebounce
	}
	return nil
}

func validateRelative(field, p string) error {
	if p == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if filepath.IsAbs(p) || p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s %q: %w", field, p, ErrEscapesRoot)
	}
	return nil
}
