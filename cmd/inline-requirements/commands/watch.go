package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/benjaminjackson/exa-skills/internal/config"
	ferrors "github.com/benjaminjackson/exa-skills/internal/foundation/errors"
	"github.com/benjaminjackson/exa-skills/internal/logfields"
	"github.com/benjaminjackson/exa-skills/internal/skills"
	"github.com/benjaminjackson/exa-skills/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before re-running (overrides watch.debounce from the config file)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repoRoot, cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	debounce := cfg.Watch.Debounce
	if w.Debounce > 0 {
		debounce = w.Debounce
	}

	runner := skills.NewRunner(repoRoot, cfg, skills.WithReporter(root.console(g)))
	// The first pass surfaces fatal problems such as a missing source document.
	if _, err := runner.Run(ctx); err != nil {
		return err
	}

	watcher, err := watch.New(watchDirs(repoRoot, cfg),
		watch.WithDebounce(debounce),
		watch.WithFilter(relevantPath(runner.SourcePath(), cfg.TargetName)))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "start watcher").Fatal().Build()
	}
	defer func() {
		_ = watcher.Close()
	}()

	slog.Info("Watching for changes", logfields.Root(repoRoot), slog.Duration("debounce", debounce))
	_, _ = fmt.Fprintln(g.Stdout, "\n👀 Watching for changes (Ctrl+C to stop)")

	return watcher.Run(ctx, func(ctx context.Context) {
		if _, err := runner.Run(ctx); err != nil {
			slog.Error("Inlining run failed", logfields.Error(err))
		}
	})
}

// watchDirs returns the source document's directory followed by the skill roots.
func watchDirs(repoRoot string, cfg *config.Config) []string {
	dirs := []string{filepath.Join(repoRoot, filepath.Dir(cfg.Source))}
	for _, r := range cfg.Roots {
		dirs = append(dirs, filepath.Join(repoRoot, r))
	}
	return dirs
}

// relevantPath matches the source document and any target document.
func relevantPath(source, targetName string) func(string) bool {
	source = filepath.Clean(source)
	return func(path string) bool {
		path = filepath.Clean(path)
		return path == source || filepath.Base(path) == targetName
	}
}
