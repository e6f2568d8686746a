package requirements

import (
	"regexp"
	"strings"
)

// Matcher recognises one way a skill document can declare its shared sections.
//
// Match reports ok when the matcher's shape is present in doc; refs may still
// be empty in that case.
type Matcher interface {
	Name() string
	Match(doc string) (refs []string, ok bool)
}

// Resolution is the outcome of resolving a document's references.
type Resolution struct {
	Refs    []string
	Matcher string
}

// Resolver tries its matchers in priority order and returns the first match.
type Resolver struct {
	matchers []Matcher
}

// NewResolver creates a resolver. With no matchers it uses DefaultMatchers.
func NewResolver(matchers ...Matcher) *Resolver {
	if len(matchers) == 0 {
		matchers = DefaultMatchers()
	}
	return &Resolver{matchers: matchers}
}

// DefaultMatchers returns the bullet list matcher followed by the inlined block
// matcher, which keeps re-runs over already rewritten documents stable.
func DefaultMatchers() []Matcher {
	return []Matcher{BulletListMatcher{}, InlinedBlockMatcher{}}
}

// Resolve returns the ordered reference names declared by doc. An empty
// Resolution means the document declares nothing to inline.
func (r *Resolver) Resolve(doc string) Resolution {
	for _, m := range r.matchers {
		if refs, ok := m.Match(doc); ok {
			return Resolution{Refs: refs, Matcher: m.Name()}
		}
	}
	return Resolution{}
}

var bulletListPattern = regexp.MustCompile(
	`(?m)^### Shared Requirements[ \t]*\r?\n(?s:.*?)common-requirements\.md\):\s*\n((?:- .+\n?)+)`,
)

// BulletListMatcher reads the legacy reference format:
//
//	### Shared Requirements
//	This skill follows (see docs/common-requirements.md):
//	- schema design patterns → see Schema Design
//	- output format selection
//
// Anything after "→" on a bullet is an annotation and is discarded.
type BulletListMatcher struct{}

// Name implements Matcher.
func (BulletListMatcher) Name() string { return "bullet-list" }

// Match implements Matcher.
func (BulletListMatcher) Match(doc string) ([]string, bool) {
	m := bulletListPattern.FindStringSubmatch(doc)
	if m == nil {
		return nil, false
	}

	var refs []string
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		name, ok := strings.CutPrefix(line, "- ")
		if !ok {
			continue
		}
		name, _, _ = strings.Cut(name, "→")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		refs = append(refs, name)
	}
	return refs, true
}

var (
	inlinedBlockPattern = regexp.MustCompile(`(?s)<shared-requirements>\s*\n(.*?)</shared-requirements>`)
	subheadingPattern   = regexp.MustCompile(`(?m)^#### (.+)$`)
)

// InlinedBlockMatcher reads a document that was already rewritten: the
// "#### <Title>" headings inside the <shared-requirements> wrapper are mapped
// back to reference names.
type InlinedBlockMatcher struct{}

// Name implements Matcher.
func (InlinedBlockMatcher) Name() string { return "inlined-block" }

// Match implements Matcher.
func (InlinedBlockMatcher) Match(doc string) ([]string, bool) {
	m := inlinedBlockPattern.FindStringSubmatch(doc)
	if m == nil {
		return nil, false
	}

	var refs []string
	for _, h := range subheadingPattern.FindAllStringSubmatch(m[1], -1) {
		title := strings.TrimSpace(h[1])
		refs = append(refs, ReferenceForTitle(title))
	}
	return refs, true
}
