// Package watch re-runs an action when files below a set of directories change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/benjaminjackson/exa-skills/internal/logfields"
)

// ErrNothingToWatch is returned by New when none of the directories exist.
var ErrNothingToWatch = errors.New("no directories to watch")

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// Watcher coalesces filesystem events into debounced callbacks.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	relevant func(path string) bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last event before the action runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithFilter restricts which changed paths trigger the action. Hidden and
// editor temp files are always ignored.
func WithFilter(relevant func(path string) bool) Option {
	return func(w *Watcher) { w.relevant = relevant }
}

// New watches every directory below dirs. Missing directories are skipped.
// The returned Watcher must be closed.
func New(dirs []string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	w := &Watcher{
		fs:       fsw,
		debounce: DefaultDebounce,
		relevant: func(string) bool { return true },
	}
	for _, opt := range opts {
		opt(w)
	}

	watched := 0
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			slog.Debug("Skipping missing watch directory", logfields.Path(dir))
			continue
		}
		addDirsRecursive(fsw, dir)
		watched++
	}
	if watched == 0 {
		_ = fsw.Close()
		return nil, ErrNothingToWatch
	}
	return w, nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run calls action after each burst of relevant changes until ctx is done.
// Actions run on the calling goroutine, one at a time.
func (w *Watcher) Run(ctx context.Context, action func(context.Context)) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.handleEvent(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-fire:
			fire = nil
			action(ctx)
		}
	}
}

// handleEvent reports whether ev should schedule the action. New directories
// are added to the watch set.
func (w *Watcher) handleEvent(ev fsnotify.Event) bool {
	if shouldIgnoreEvent(ev.Name) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			addDirsRecursive(w.fs, ev.Name)
			return false
		}
	}
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	if !w.relevant(ev.Name) {
		return false
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	return true
}

func addDirsRecursive(w *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for hidden, swap and temp files, including
// the temp files created by atomic writes.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "."):
		return true
	case strings.HasSuffix(base, "~"), strings.HasSuffix(base, ".swp"), strings.HasSuffix(base, ".swx"):
		return true
	case strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"):
		return true
	}
	return false
}
