// Package watch reloads a sidebar file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/quantmind-br/sidenav-go/internal/nav"
	"github.com/quantmind-br/sidenav-go/internal/source"
	"github.com/quantmind-br/sidenav-go/internal/utils"
)

// DefaultDebounce is how long the file must stay quiet before a reload
const DefaultDebounce = 200 * time.Millisecond

// Result is the outcome of one reload
type Result struct {
	Sidebars nav.Sidebars
	Warnings []nav.Warning
	Err      error
}

// Watcher reloads and revalidates a sidebar file on change
type Watcher struct {
	path     string
	onLoad   func(Result)
	loader   *source.Loader
	opts     source.Options
	debounce time.Duration
	logger   *utils.Logger
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLoader sets the loader and the load options used on each reload
func WithLoader(loader *source.Loader, opts source.Options) Option {
	return func(w *Watcher) {
		if loader != nil {
			w.loader = loader
		}
		w.opts = opts
	}
}

// WithLogger sets the watcher's logger
func WithLogger(logger *utils.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a watcher for path. onLoad is called once when Run starts
// and again after every settled change, always from Run's goroutine.
func New(path string, onLoad func(Result), opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		onLoad:   onLoad,
		loader:   source.NewLoader(),
		debounce: DefaultDebounce,
		logger:   utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. The parent directory is watched
// rather than the file so that editors which replace the file on save
// keep triggering reloads.
func (w *Watcher) Run(ctx context.Context) error {
	path, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	logger := w.logger.WithComponent("watch").WithFile(path)
	logger.Info().Dur("debounce", w.debounce).Msg("Watching sidebar file")
	w.reload(path, logger)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("fsnotify event")
			timer.Reset(w.debounce)
		case <-timer.C:
			w.reload(path, logger)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("Watcher error")
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) reload(path string, logger *utils.Logger) {
	sidebars, warnings, err := w.loader.LoadSidebars(path, w.opts)
	if err != nil {
		logger.Warn().Err(err).Msg("Reload failed")
	} else {
		logger.Info().
			Int("sidebars", len(sidebars)).
			Int("warnings", len(warnings)).
			Msg("Sidebars reloaded")
	}
	if w.onLoad != nil {
		w.onLoad(Result{Sidebars: sidebars, Warnings: warnings, Err: err})
	}
}
