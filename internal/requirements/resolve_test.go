package requirements

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestResolve_BulletList(t *testing.T) {
	doc := "# Skill\n\n### Shared Requirements\n\nThis skill inherits (see docs/common-requirements.md):\n" +
		"- schema design patterns → see docs\n" +
		"- output format selection\n" +
		"\n## Usage\n- not a reference\n"

	res := NewResolver().Resolve(doc)

	if diff := cmp.Diff([]string{"schema design patterns", "output format selection"}, res.Refs); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "bullet-list", res.Matcher)
}

func TestResolve_BulletListKeepsCaseAndDropsEmptyNames(t *testing.T) {
	doc := "### Shared Requirements\nfrom common-requirements.md):\n- Shell Command Best Practices\n- → annotation only\n"

	res := NewResolver().Resolve(doc)

	require.Equal(t, []string{"Shell Command Best Practices"}, res.Refs)
}

func TestResolve_BulletListCRLF(t *testing.T) {
	doc := "### Shared Requirements\r\nSee common-requirements.md):\r\n- schema design patterns\r\n- output format selection\r\n"

	res := NewResolver().Resolve(doc)

	require.Equal(t, []string{"schema design patterns", "output format selection"}, res.Refs)
}

func TestResolve_InlinedBlock(t *testing.T) {
	doc := "### Shared Requirements\n\n<shared-requirements>\n\n" +
		"#### Schema Design\n\nUse normalized keys.\n\n" +
		"#### Output Format Selection\n\nJSON.\n\n" +
		"#### Rate Limits\n\nBack off.\n\n" +
		"</shared-requirements>\n## Next\n"

	res := NewResolver().Resolve(doc)

	if diff := cmp.Diff([]string{"schema design patterns", "output format selection", "rate limits"}, res.Refs); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "inlined-block", res.Matcher)
}

func TestResolve_BulletListTakesPriority(t *testing.T) {
	doc := "### Shared Requirements\n(common-requirements.md):\n- output format selection\n\n" +
		"<shared-requirements>\n#### Schema Design\n</shared-requirements>\n"

	res := NewResolver().Resolve(doc)

	require.Equal(t, []string{"output format selection"}, res.Refs)
	require.Equal(t, "bullet-list", res.Matcher)
}

func TestResolve_NothingRecognised(t *testing.T) {
	for _, doc := range []string{
		"# Skill\n\nNo shared requirements here.\n",
		"### Shared Requirements\n- schema design patterns\n", // no common-requirements.md): line
		"#### Shared Requirements\nfrom common-requirements.md):\n- schema design patterns\n",
	} {
		res := NewResolver().Resolve(doc)
		require.Empty(t, res.Refs, doc)
		require.Empty(t, res.Matcher, doc)
	}
}

type fixedMatcher struct{ refs []string }

func (fixedMatcher) Name() string                    { return "fixed" }
func (m fixedMatcher) Match(string) ([]string, bool) { return m.refs, m.refs != nil }

func TestResolve_CustomMatchersInOrder(t *testing.T) {
	r := NewResolver(fixedMatcher{}, fixedMatcher{refs: []string{"x"}}, BulletListMatcher{})

	res := r.Resolve("anything")

	require.Equal(t, Resolution{Refs: []string{"x"}, Matcher: "fixed"}, res)
}
