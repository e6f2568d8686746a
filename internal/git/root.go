package git

import (
	"errors"
	"fmt"
	"path/filepath"

	ggit "github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no enclosing git working tree exists.
var ErrNotRepository = errors.New("not inside a git working tree")

// FindRoot returns the root of the git working tree containing start,
// walking up parent directories until a .git entry is found.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	repo, err := ggit.PlainOpenWithOptions(abs, &ggit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, ggit.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, abs)
		}
		return "", fmt.Errorf("open repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to rewrite.
		return "", fmt.Errorf("%w: %s", ErrNotRepository, abs)
	}
	return wt.Filesystem.Root(), nil
}

// ResolveRoot returns explicit when set, otherwise the enclosing working tree
// root of cwd, falling back to cwd itself outside a repository.
func ResolveRoot(explicit, cwd string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	root, err := FindRoot(cwd)
	if errors.Is(err, ErrNotRepository) {
		return filepath.Abs(cwd)
	}
	return root, err
}
