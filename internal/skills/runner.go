package skills

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/benjaminjackson/exa-skills/internal/config"
	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/logfields"
	"github.com/benjaminjackson/exa-skills/internal/requirements"
)

// Summary counts document outcomes for one run.
type Summary struct {
	Files     int
	Updated   int
	Unchanged int
	Skipped   int
	Failed    int
	// MissingSections counts per-section warnings across all documents.
	MissingSections int
}

// Reporter presents run progress to the user.
type Reporter interface {
	SectionsLoaded(source string, titles []string)
	Discovered(count int)
	Document(res Result)
	Finished(sum Summary)
}

// Recorder observes run outcomes, e.g. for metrics.
type Recorder interface {
	ObserveDocument(res Result)
	ObserveRun(sum Summary, duration time.Duration)
}

// Runner drives one inlining pass over a repository.
type Runner struct {
	root     string
	cfg      *config.Config
	reporter Reporter
	recorder Recorder
	dryRun   bool
	write    WriteFunc
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) RunnerOption { return func(rn *Runner) { rn.reporter = r } }

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) RunnerOption { return func(rn *Runner) { rn.recorder = r } }

// WithRunDryRun makes the run compute outcomes without writing.
func WithRunDryRun(dryRun bool) RunnerOption { return func(rn *Runner) { rn.dryRun = dryRun } }

// WithRunWriter replaces the writer used for updated documents.
func WithRunWriter(w WriteFunc) RunnerOption { return func(rn *Runner) { rn.write = w } }

// NewRunner creates a Runner for the repository at root.
func NewRunner(root string, cfg *config.Config, opts ...RunnerOption) *Runner {
	rn := &Runner{
		root:     root,
		cfg:      cfg,
		reporter: nopReporter{},
		recorder: nopRecorder{},
		write:    WriteAtomic,
	}
	for _, opt := range opts {
		opt(rn)
	}
	return rn
}

// SourcePath returns the absolute path of the common requirements document.
func (rn *Runner) SourcePath() string {
	return filepath.Join(rn.root, rn.cfg.Source)
}

// LoadSections reads and parses the common requirements document.
func (rn *Runner) LoadSections() (requirements.SectionMap, error) {
	data, err := os.ReadFile(rn.SourcePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.NotFoundError("common requirements document not found").
				WithContext("path", rn.cfg.Source).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read common requirements").
			Fatal().
			WithContext("path", rn.cfg.Source).
			Build()
	}
	return requirements.Extract(string(data)), nil
}

// Run loads the sections, discovers targets and processes each of them.
//
// The returned error is non-nil only for run-level failures: missing source
// document, no targets, discovery errors or cancellation. Document failures
// are counted in the Summary.
func (rn *Runner) Run(ctx context.Context) (Summary, error) {
	started := time.Now()
	logger := slog.With(logfields.RunID(uuid.NewString()))

	sections, err := rn.LoadSections()
	if err != nil {
		return Summary{}, err
	}
	rn.reporter.SectionsLoaded(rn.cfg.Source, sections.Titles())
	logger.Debug("Loaded common requirements", logfields.Path(rn.cfg.Source), logfields.Count(len(sections)))

	targets, err := Discover(rn.root, rn.cfg.Roots, rn.cfg.TargetName)
	if err != nil {
		return Summary{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "discover skill documents").Fatal().Build()
	}
	if len(targets) == 0 {
		return Summary{}, ferrors.NotFoundError("no " + rn.cfg.TargetName + " files found").
			WithContext("roots", rn.cfg.Roots).
			Build()
	}
	rn.reporter.Discovered(len(targets))

	inliner := NewInliner(sections, WithDryRun(rn.dryRun), WithWriter(rn.write))
	sum := Summary{Files: len(targets)}
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		res := inliner.Process(target)
		sum.add(res)
		rn.logResult(logger, res)
		rn.reporter.Document(res)
		rn.recorder.ObserveDocument(res)
	}

	rn.reporter.Finished(sum)
	rn.recorder.ObserveRun(sum, time.Since(started))
	logger.Info("Inlining finished",
		logfields.Count(sum.Files),
		slog.Int("updated", sum.Updated),
		slog.Int("failed", sum.Failed),
		logfields.DurationMS(float64(time.Since(started).Microseconds())/1000))
	return sum, nil
}

func (s *Summary) add(res Result) {
	switch res.Outcome {
	case OutcomeUpdated:
		s.Updated++
	case OutcomeUnchanged:
		s.Unchanged++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
	s.MissingSections += len(res.Missing)
}

func (rn *Runner) logResult(logger *slog.Logger, res Result) {
	attrs := []any{logfields.Path(res.RelPath), logfields.Outcome(string(res.Outcome))}
	if res.Skill != "" {
		attrs = append(attrs, logfields.Skill(res.Skill))
	}
	if res.Matcher != "" {
		attrs = append(attrs, logfields.Matcher(res.Matcher))
	}
	for _, title := range res.Missing {
		logger.Warn("Section not found in common requirements", logfields.Path(res.RelPath), logfields.Section(title))
	}
	if res.Err != nil {
		logger.Error("Document failed", append(attrs, logfields.Error(res.Err))...)
		return
	}
	logger.Debug("Document processed", append(attrs, logfields.Count(len(res.Inlined)))...)
}

type nopReporter struct{}

func (nopReporter) SectionsLoaded(string, []string) {}
func (nopReporter) Discovered(int)                  {}
func (nopReporter) Document(Result)                 {}
func (nopReporter) Finished(Summary)                {}

type nopRecorder struct{}

func (nopRecorder) ObserveDocument(Result)            {}
func (nopRecorder) ObserveRun(Summary, time.Duration) {}
