package requirements

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section describes one shared section of the common requirements document.
//
// Title is the canonical heading used in SKILL.md files, Reference is the
// lowercase name skills use when pointing at the section.
type Section struct {
	Title     string
	Reference string
}

// Tag returns the kebab-case marker name delimiting the section in the source
// document, e.g. "schema-design" for "Schema Design".
func (s Section) Tag() string {
	return strings.ReplaceAll(lowerCase(s.Title), " ", "-")
}

// canonical is the single source of truth for the shared sections. Adding a
// shared section means adding a row here.
var canonical = []Section{
	{Title: "Schema Design", Reference: "schema design patterns"},
	{Title: "Output Format Selection", Reference: "output format selection"},
	{Title: "Shell Command Best Practices", Reference: "shell command best practices"},
}

// Casers carry state, so a fresh one is built per call.
func foldCase(s string) string { return cases.Fold().String(s) }

func lowerCase(s string) string { return cases.Lower(language.Und).String(s) }

// Sections returns the canonical sections in document order.
func Sections() []Section {
	out := make([]Section, len(canonical))
	copy(out, canonical)
	return out
}

// TitleForReference maps a free-text reference name to its canonical title.
// The lookup ignores case; unknown names are returned unchanged.
func TitleForReference(ref string) string {
	key := foldCase(ref)
	for _, s := range canonical {
		if foldCase(s.Reference) == key {
			return s.Title
		}
	}
	return ref
}

// ReferenceForTitle maps a canonical title back to its reference name.
// Unknown titles fall back to their lowercased text.
func ReferenceForTitle(title string) string {
	for _, s := range canonical {
		if s.Title == title {
			return s.Reference
		}
	}
	return lowerCase(title)
}
