package skills

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/benjaminjackson/exa-skills/internal/logfields"
)

// Target is a discovered skill document.
type Target struct {
	Path    string // Absolute path
	RelPath string // Path relative to the repository root
}

// Discover finds every file called name below the given roots of repoRoot.
// Roots that do not exist are skipped. Targets are sorted by RelPath.
func Discover(repoRoot string, roots []string, name string) ([]Target, error) {
	pattern := "**/" + name

	var targets []Target
	seen := make(map[string]struct{})
	for _, root := range roots {
		dir := filepath.Join(repoRoot, root)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			slog.Debug("Skipping missing skill root", logfields.Root(root))
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %s in %s: %w", pattern, root, err)
		}
		for _, m := range matches {
			if hiddenPath(m) {
				continue
			}
			rel := filepath.Join(root, filepath.FromSlash(m))
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			targets = append(targets, Target{
				Path:    filepath.Join(repoRoot, rel),
				RelPath: rel,
			})
		}
		slog.Debug("Scanned skill root", logfields.Root(root), logfields.Count(len(matches)))
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].RelPath < targets[j].RelPath })
	return targets, nil
}

// hiddenPath reports whether any segment of the slash separated path m is a
// dot directory or dot file.
func hiddenPath(m string) bool {
	for _, seg := range strings.Split(m, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
