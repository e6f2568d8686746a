package skills

import (
	"log/slog"
	"os"

	"github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/frontmatter"
	"github.com/benjaminjackson/exa-skills/internal/logfields"
	"github.com/benjaminjackson/exa-skills/internal/requirements"
)

// Outcome classifies what happened to one document.
type Outcome string

const (
	OutcomeUpdated   Outcome = "updated"   // content changed and was written (or would be, in dry-run)
	OutcomeUnchanged Outcome = "unchanged" // already current
	OutcomeSkipped   Outcome = "skipped"   // no shared requirements declared
	OutcomeFailed    Outcome = "failed"    // read, parse or write error
)

// Result describes the processing of one document.
type Result struct {
	Target
	Skill   string // frontmatter name, when present
	Matcher string
	Outcome Outcome
	Inlined []string
	Missing []string
	Err     error
}

// Inliner rewrites documents using one immutable SectionMap.
type Inliner struct {
	sections requirements.SectionMap
	resolver *requirements.Resolver
	write    WriteFunc
	dryRun   bool
}

// InlinerOption configures an Inliner.
type InlinerOption func(*Inliner)

// WithWriter replaces the atomic file writer.
func WithWriter(w WriteFunc) InlinerOption {
	return func(in *Inliner) { in.write = w }
}

// WithResolver replaces the default reference resolver.
func WithResolver(r *requirements.Resolver) InlinerOption {
	return func(in *Inliner) { in.resolver = r }
}

// WithDryRun computes outcomes without writing.
func WithDryRun(dryRun bool) InlinerOption {
	return func(in *Inliner) { in.dryRun = dryRun }
}

// NewInliner creates an Inliner for sections.
func NewInliner(sections requirements.SectionMap, opts ...InlinerOption) *Inliner {
	in := &Inliner{
		sections: sections,
		resolver: requirements.NewResolver(),
		write:    WriteAtomic,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Process inlines the shared requirements into target. It never panics on
// malformed content; failures are returned in Result.Err.
func (in *Inliner) Process(target Target) Result {
	res := Result{Target: target}

	data, err := os.ReadFile(target.Path)
	if err != nil {
		return failed(res, errors.WrapError(err, errors.CategoryFileSystem, "read document").
			WithContext("path", target.RelPath).Build())
	}
	content := string(data)

	if meta, ok, err := frontmatter.ReadSkillMeta(data); err != nil {
		slog.Debug("Ignoring unreadable skill frontmatter", logfields.Path(target.RelPath), logfields.Error(err))
	} else if ok {
		res.Skill = meta.Name
	}

	resolution := in.resolver.Resolve(content)
	res.Matcher = resolution.Matcher
	if len(resolution.Refs) == 0 {
		res.Outcome = OutcomeSkipped
		return res
	}

	block := requirements.BuildBlock(resolution.Refs, in.sections)
	res.Inlined = block.Inlined
	res.Missing = block.Missing

	updated, err := requirements.Substitute(content, block.Text)
	if err != nil {
		return failed(res, errors.WrapError(err, errors.CategoryDocument, "substitute shared requirements").
			WithContext("path", target.RelPath).Build())
	}

	if updated == content {
		res.Outcome = OutcomeUnchanged
		return res
	}

	if !in.dryRun {
		if err := in.write(target.Path, []byte(updated)); err != nil {
			return failed(res, errors.WrapError(err, errors.CategoryFileSystem, "write document").
				WithContext("path", target.RelPath).Build())
		}
	}
	res.Outcome = OutcomeUpdated
	return res
}

func failed(res Result, err error) Result {
	res.Outcome = OutcomeFailed
	res.Err = err
	return res
}
