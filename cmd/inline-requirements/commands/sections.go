package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/logfields"
	"github.com/benjaminjackson/exa-skills/internal/requirements"
	"github.com/benjaminjackson/exa-skills/internal/skills"
)

// SectionsCmd implements the 'sections' command.
type SectionsCmd struct {
	Raw   bool `help:"Print plain Markdown instead of rendering it"`
	Width int  `default:"80" help:"Word wrap width for rendered output"`
}

func (s *SectionsCmd) Run(g *Global, root *CLI) error {
	repoRoot, cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	sections, err := skills.NewRunner(repoRoot, cfg).LoadSections()
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		slog.Warn("No tagged sections in common requirements", logfields.Path(cfg.Source))
		return nil
	}

	md := sectionsMarkdown(sections)
	if s.Raw {
		_, _ = fmt.Fprint(g.Stdout, md)
		return nil
	}

	style := glamour.WithAutoStyle()
	if root.NoColor {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(s.Width))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "create markdown renderer").Build()
	}
	out, err := renderer.Render(md)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "render sections").Build()
	}
	_, _ = fmt.Fprint(g.Stdout, out)
	return nil
}

// sectionsMarkdown lists sections in canonical order with their marker tag.
func sectionsMarkdown(sections requirements.SectionMap) string {
	var b strings.Builder
	for _, sec := range requirements.Sections() {
		body, ok := sections.Get(sec.Title)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sec.Title)
		fmt.Fprintf(&b, "Tag `<%s>`, referenced as \"%s\".\n\n", sec.Tag(), sec.Reference)
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	return b.String()
}
