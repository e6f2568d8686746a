// Package report prints human-readable progress of an inlining run.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/skills"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

// Console writes one status line per event. It implements skills.Reporter.
type Console struct {
	out    io.Writer
	color  bool
	dryRun bool
	source string
}

var _ skills.Reporter = (*Console)(nil)

// Option configures a Console.
type Option func(*Console)

// WithColor enables or disables styling.
func WithColor(enabled bool) Option { return func(c *Console) { c.color = enabled } }

// WithDryRun phrases updates as pending rather than written.
func WithDryRun(dryRun bool) Option { return func(c *Console) { c.dryRun = dryRun } }

// NewConsole creates a Console writing to out. Styling is on by default.
func NewConsole(out io.Writer, opts ...Option) *Console {
	c := &Console{out: out, color: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) SectionsLoaded(source string, titles []string) {
	c.source = source
	c.printf("📚 %s\n", c.paint(headerStyle, fmt.Sprintf("Loaded %d sections from %s:", len(titles), filepath.Base(source))))
	for _, title := range titles {
		c.printf("   - %s\n", c.paint(titleStyle, title))
	}
	c.printf("\n")
}

func (c *Console) Discovered(count int) {
	c.printf("🔍 %s\n\n", c.paint(headerStyle, fmt.Sprintf("Found %d SKILL.md files", count)))
}

func (c *Console) Document(res skills.Result) {
	path := c.paint(pathStyle, filepath.ToSlash(res.RelPath))

	for _, title := range res.Missing {
		c.printf("⚠️  %s: %s\n", path, c.paint(warningStyle,
			fmt.Sprintf("Section '%s' not found in %s", title, filepath.Base(c.source))))
	}

	switch res.Outcome {
	case skills.OutcomeUpdated:
		verb := "Inlined"
		if c.dryRun {
			verb = "Would inline"
		}
		c.printf("✅ %s: %s\n", path, c.paint(successStyle, fmt.Sprintf("%s %d sections", verb, len(res.Inlined))))
	case skills.OutcomeUnchanged:
		c.printf("⚠️  %s: %s\n", path, c.paint(mutedStyle, "No changes needed"))
	case skills.OutcomeSkipped:
		c.printf("⚠️  %s: %s\n", path, c.paint(warningStyle, "No shared requirements found"))
	case skills.OutcomeFailed:
		c.printf("❌ %s: %s\n", path, c.paint(failureStyle, failureMessage(res.Err)))
	}
}

func (c *Console) Finished(sum skills.Summary) {
	c.printf("\n✨ %s\n", c.paint(headerStyle, fmt.Sprintf("Done! Processed %d files", sum.Files)))
	if sum.Failed > 0 {
		c.printf("   %s\n", c.paint(failureStyle, fmt.Sprintf("%d failed", sum.Failed)))
	}
}

func (c *Console) paint(style lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Render(s)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// failureMessage omits the path context; the line already starts with it.
func failureMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	ce, ok := ferrors.AsClassified(err)
	if !ok {
		return err.Error()
	}
	msg := ce.Message()
	if cause := ce.Cause(); cause != nil {
		msg += ": " + cause.Error()
	}
	return msg
}
