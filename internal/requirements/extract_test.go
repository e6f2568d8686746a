package requirements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const commonRequirements = `# Common Requirements

<schema-design>
## Schema Design

Use normalized keys.
Prefer snake_case.
</schema-design>

<output-format-selection>

Choose JSON for machines.

</output-format-selection>

<shell-command-best-practices>Quote every variable.</shell-command-best-practices>
`

func TestExtract_AllSections(t *testing.T) {
	sections := Extract(commonRequirements)

	require.Equal(t, SectionMap{
		"Schema Design":                "## Schema Design\n\nUse normalized keys.\nPrefer snake_case.",
		"Output Format Selection":      "Choose JSON for machines.",
		"Shell Command Best Practices": "Quote every variable.",
	}, sections)
	require.Equal(t, []string{"Schema Design", "Output Format Selection", "Shell Command Best Practices"}, sections.Titles())
}

func TestExtract_MissingOrMalformedMarkers(t *testing.T) {
	src := "<schema-design>Use normalized keys.</schema-design>\n" +
		"<output-format-selection>never closed\n" +
		"<shell-command-best-practices></shell-command-best-practices>\n"

	sections := Extract(src)

	require.Equal(t, SectionMap{"Schema Design": "Use normalized keys."}, sections)
	_, ok := sections.Get("Output Format Selection")
	require.False(t, ok)
	_, ok = sections.Get("Shell Command Best Practices")
	require.False(t, ok, "empty bodies are omitted")
}

func TestExtract_FirstRegionWins(t *testing.T) {
	src := "<schema-design>first</schema-design>\n<schema-design>second</schema-design>"

	require.Equal(t, "first", Extract(src)["Schema Design"])
}

func TestExtract_UnknownTagsIgnored(t *testing.T) {
	require.Empty(t, Extract("<rate-limits>Back off.</rate-limits>"))
}
