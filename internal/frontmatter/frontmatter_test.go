package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\nname: exa-search\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("name: exa-search\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\nname: value\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\nname: value\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("name: value\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\nname: x\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("name: x\n"), fm)
	require.Empty(t, body)
}

func TestReadSkillMeta(t *testing.T) {
	meta, ok, err := ReadSkillMeta([]byte("---\nname: exa-websets\ndescription: Build websets.\n---\n# Websets\n"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, SkillMeta{Name: "exa-websets", Description: "Build websets."}, meta)

	_, ok, err = ReadSkillMeta([]byte("# No frontmatter\n"))
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = ReadSkillMeta([]byte("---\nname: [bad\n---\n"))
	require.Error(t, err)
}
