package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const commonRequirements = "# Common Requirements\n\n" +
	"<schema-design>\nUse normalized keys.\n</schema-design>\n\n" +
	"<output-format-selection>\nPrefer JSON.\n</output-format-selection>\n"

const legacySkill = "---\nname: exa-search\ndescription: Search the web.\n---\n# Exa Search\n\n" +
	"### Shared Requirements\n\nThis skill follows (docs/common-requirements.md):\n" +
	"- schema design patterns → keys\n- output format selection\n\n## Usage\n\nRun it.\n"

const inlinedSkill = "---\nname: exa-search\ndescription: Search the web.\n---\n# Exa Search\n\n" +
	"### Shared Requirements\n\n<shared-requirements>\n\n" +
	"#### Schema Design\n\nUse normalized keys.\n\n" +
	"#### Output Format Selection\n\nPrefer JSON.\n\n" +
	"</shared-requirements>\n\n## Usage\n\nRun it.\n"

// writeTree creates files relative to a fresh temp dir and returns the dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
