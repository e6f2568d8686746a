package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	ggit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/benjaminjackson/exa-skills/internal/skills"
)

const resultsFile = "results.yaml"

// DocumentResult is the golden form of one skills.Result.
type DocumentResult struct {
	Path    string   `yaml:"path"`
	Outcome string   `yaml:"outcome"`
	Matcher string   `yaml:"matcher,omitempty"`
	Skill   string   `yaml:"skill,omitempty"`
	Inlined []string `yaml:"inlined,omitempty,flow"`
	Missing []string `yaml:"missing,omitempty,flow"`
}

// collector is a skills.Reporter keeping every document result.
type collector struct {
	results []DocumentResult
}

func (c *collector) SectionsLoaded(string, []string) {}
func (c *collector) Discovered(int)                  {}
func (c *collector) Finished(skills.Summary)         {}

func (c *collector) Document(res skills.Result) {
	c.results = append(c.results, DocumentResult{
		Path:    filepath.ToSlash(res.RelPath),
		Outcome: string(res.Outcome),
		Matcher: res.Matcher,
		Skill:   res.Skill,
		Inlined: res.Inlined,
		Missing: res.Missing,
	})
}

// setupTestRepo copies a fixture tree into a fresh git repository with one
// commit and returns its path.
func setupTestRepo(t *testing.T, fixture string) string {
	t.Helper()

	tmpDir := t.TempDir()
	require.NoError(t, copyDir(fixture, tmpDir), "failed to copy fixture")

	repo, err := ggit.PlainInit(tmpDir, false)
	require.NoError(t, err, "failed to initialize git repo")

	w, err := repo.Worktree()
	require.NoError(t, err, "failed to get worktree")
	require.NoError(t, w.AddGlob("."), "failed to add files to git")

	_, err = w.Commit("Initial test commit", &ggit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to create initial commit")

	resolved, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	return resolved
}

// copyDir recursively copies a directory tree.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

// listFiles returns the slash-separated relative paths of all regular files below root.
func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return files
}

func readGoldenResults(t *testing.T, path string) []DocumentResult {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read golden results (run with -update-golden)")
	var results []DocumentResult
	require.NoError(t, yaml.Unmarshal(data, &results))
	return results
}

func writeGoldenResults(t *testing.T, path string, results []DocumentResult) {
	t.Helper()
	data, err := yaml.Marshal(results)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
