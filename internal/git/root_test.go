package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ggit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := ggit.PlainInit(dir, false)
	require.NoError(t, err)
	// TempDir may sit behind a symlink (macOS /var -> /private/var).
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestFindRoot_FromNestedDirectory(t *testing.T) {
	root := initRepo(t)
	nested := filepath.Join(root, "exa-core", "search")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)

	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, root, gotResolved)
}

func TestFindRoot_OutsideRepository(t *testing.T) {
	_, err := FindRoot(t.TempDir())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotRepository))
}

func TestResolveRoot(t *testing.T) {
	explicit := t.TempDir()
	got, err := ResolveRoot(explicit, "/somewhere/else")
	require.NoError(t, err)
	require.Equal(t, explicit, got)

	plain := t.TempDir()
	got, err = ResolveRoot("", plain)
	require.NoError(t, err)
	require.Equal(t, plain, got)

	repo := initRepo(t)
	sub := filepath.Join(repo, "docs")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	got, err = ResolveRoot("", sub)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, repo, gotResolved)
}
