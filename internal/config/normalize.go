package config

import (
	"path/filepath"
	"strings"
)

// normalize trims and cleans path values and drops duplicate roots.
func normalize(cfg *Config) {
	cfg.Source = cleanPath(cfg.Source)
	cfg.TargetName = strings.TrimSpace(cfg.TargetName)

	seen := make(map[string]struct{}, len(cfg.Roots))
	roots := cfg.Roots[:0]
	for _, r := range cfg.Roots {
		r = cleanPath(r)
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		roots = append(roots, r)
	}
	cfg.Roots = roots
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(p))
}
