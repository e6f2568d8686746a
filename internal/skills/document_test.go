package skills

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/requirements"
)

func target(root, rel string) Target {
	return Target{Path: filepath.Join(root, filepath.FromSlash(rel)), RelPath: rel}
}

func TestProcess_UpdatesLegacyDocument(t *testing.T) {
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": legacySkill})
	in := NewInliner(requirements.Extract(commonRequirements))

	res := in.Process(target(root, "exa-core/SKILL.md"))

	require.NoError(t, res.Err)
	require.Equal(t, OutcomeUpdated, res.Outcome)
	require.Equal(t, "exa-search", res.Skill)
	require.Equal(t, "bullet-list", res.Matcher)
	require.Equal(t, []string{"Schema Design", "Output Format Selection"}, res.Inlined)
	require.Equal(t, inlinedSkill, readFile(t, res.Path))
}

func TestProcess_SecondRunIsNoOp(t *testing.T) {
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": legacySkill})
	in := NewInliner(requirements.Extract(commonRequirements))
	tg := target(root, "exa-core/SKILL.md")

	first := in.Process(tg)
	require.Equal(t, OutcomeUpdated, first.Outcome)
	afterFirst := readFile(t, tg.Path)

	second := in.Process(tg)
	require.Equal(t, OutcomeUnchanged, second.Outcome)
	require.Equal(t, "inlined-block", second.Matcher)
	require.Equal(t, afterFirst, readFile(t, tg.Path))
}

func TestProcess_UnchangedDoesNotWrite(t *testing.T) {
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": inlinedSkill})
	writes := 0
	in := NewInliner(requirements.Extract(commonRequirements), WithWriter(func(string, []byte) error {
		writes++
		return nil
	}))

	res := in.Process(target(root, "exa-core/SKILL.md"))

	require.Equal(t, OutcomeUnchanged, res.Outcome)
	require.Zero(t, writes)
}

func TestProcess_NoReferencesSkipped(t *testing.T) {
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": "# Plain skill\n"})
	in := NewInliner(requirements.Extract(commonRequirements))

	res := in.Process(target(root, "exa-core/SKILL.md"))

	require.Equal(t, OutcomeSkipped, res.Outcome)
	require.Equal(t, "# Plain skill\n", readFile(t, res.Path))
}

func TestProcess_MissingSectionStillInlinesOthers(t *testing.T) {
	doc := "### Shared Requirements\n(common-requirements.md):\n- nonexistent section\n- schema design patterns\n"
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": doc})
	in := NewInliner(requirements.Extract(commonRequirements))

	res := in.Process(target(root, "exa-core/SKILL.md"))

	require.Equal(t, OutcomeUpdated, res.Outcome)
	require.Equal(t, []string{"nonexistent section"}, res.Missing)
	require.Equal(t, []string{"Schema Design"}, res.Inlined)
	got := readFile(t, res.Path)
	require.True(t, strings.Contains(got, "#### Schema Design\n\nUse normalized keys."))
	require.False(t, strings.Contains(got, "nonexistent"))
}

func TestProcess_DryRunDoesNotWrite(t *testing.T) {
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": legacySkill})
	in := NewInliner(requirements.Extract(commonRequirements), WithDryRun(true))

	res := in.Process(target(root, "exa-core/SKILL.md"))

	require.Equal(t, OutcomeUpdated, res.Outcome)
	require.Equal(t, legacySkill, readFile(t, res.Path))
}

func TestProcess_ReadFailure(t *testing.T) {
	in := NewInliner(requirements.SectionMap{})

	res := in.Process(target(t.TempDir(), "exa-core/SKILL.md"))

	require.Equal(t, OutcomeFailed, res.Outcome)
	require.True(t, ferrors.HasCategory(res.Err, ferrors.CategoryFileSystem))
}

func TestProcess_WriteFailure(t *testing.T) {
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": legacySkill})
	boom := errors.New("disk full")
	in := NewInliner(requirements.Extract(commonRequirements), WithWriter(func(string, []byte) error { return boom }))

	res := in.Process(target(root, "exa-core/SKILL.md"))

	require.Equal(t, OutcomeFailed, res.Outcome)
	require.True(t, errors.Is(res.Err, boom))
	require.Equal(t, legacySkill, readFile(t, res.Path))
}

func TestProcess_BrokenFrontmatterIsNotFatal(t *testing.T) {
	doc := "---\nname: [oops\n---\n" + strings.TrimPrefix(legacySkill, "---\nname: exa-search\ndescription: Search the web.\n---\n")
	root := writeTree(t, map[string]string{"exa-core/SKILL.md": doc})
	in := NewInliner(requirements.Extract(commonRequirements))

	res := in.Process(target(root, "exa-core/SKILL.md"))

	require.Equal(t, OutcomeUpdated, res.Outcome)
	require.Empty(t, res.Skill)
}
