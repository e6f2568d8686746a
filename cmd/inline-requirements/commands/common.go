package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/benjaminjackson/exa-skills/internal/config"
	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/git"
	"github.com/benjaminjackson/exa-skills/internal/logfields"
	"github.com/benjaminjackson/exa-skills/internal/report"
)

// Global carries process-wide state shared by subcommands.
type Global struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: ${config_file} at the repository root)" type:"path"`
	Root    string           `short:"r" help:"Repository root (default: enclosing git working tree, else the current directory)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	NoColor bool             `name:"no-color" help:"Disable styled console output"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Inline   InlineCmd   `cmd:"" default:"withargs" help:"Inline shared requirements into skill documents"`
	Sections SectionsCmd `cmd:"" help:"Show the sections of the common requirements document"`
	Watch    WatchCmd    `cmd:"" help:"Re-inline whenever the requirements or a skill document changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	w := g.Stderr
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	g.Logger = logger
	return nil
}

// loadConfig resolves the repository root and loads its configuration.
// An explicit --config file must exist; the default one is optional.
func (c *CLI) loadConfig() (string, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "determine working directory").Fatal().Build()
	}
	root, err := git.ResolveRoot(c.Root, cwd)
	if err != nil {
		return "", nil, ferrors.WrapError(err, ferrors.CategoryGit, "resolve repository root").
			Fatal().
			WithContext("path", cwd).
			Build()
	}

	path, optional := c.Config, false
	if path == "" {
		path, optional = filepath.Join(root, config.DefaultFileName), true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return "", nil, ferrors.WrapError(err, ferrors.CategoryConfig, "load configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}

	slog.Debug("Configuration loaded",
		logfields.Root(root),
		logfields.Path(cfg.Source),
		slog.Any("roots", cfg.Roots),
		slog.String("target_name", cfg.TargetName))
	return root, cfg, nil
}

func (c *CLI) console(g *Global, opts ...report.Option) *report.Console {
	return report.NewConsole(g.Stdout, append([]report.Option{report.WithColor(!c.NoColor)}, opts...)...)
}
