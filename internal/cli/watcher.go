package cli

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/parser"
	"github.com/toyz/stubgen/internal/utils"
)

// DefaultDebounce is how long the watcher waits for changes to settle
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs generation when description files change. Runs are
// serialized and a burst of events triggers a single run.
type Watcher struct {
	watcher     *fsnotify.Watcher
	debounce    time.Duration
	onChange    func(ctx context.Context) error
	diagnostics *utils.DiagnosticSystem

	mutex   sync.Mutex
	timer   *time.Timer
	running sync.Mutex
}

// NewWatcher watches dirs and calls onChange after each settled burst of
// description file events
func NewWatcher(dirs []string, debounce time.Duration, diagnostics *utils.DiagnosticSystem, onChange func(ctx context.Context) error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.FileSystemErrorCode, "failed to create file watcher", err)
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.WrapFileSystemError("watch", dir, err)
		}
		diagnostics.Debug("Watching %s", dir)
	}

	return &Watcher{
		watcher:     fw,
		debounce:    debounce,
		onChange:    onChange,
		diagnostics: diagnostics,
	}, nil
}

// Watch blocks until ctx is done, then stops pending runs and closes the
// underlying watcher
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New(errors.FileSystemErrorCode, "watcher events channel closed")
			}
			if !relevant(event) {
				continue
			}

			w.diagnostics.Debug("File event: %s %s", event.Op, event.Name)
			w.schedule(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New(errors.FileSystemErrorCode, "watcher errors channel closed")
			}
			w.diagnostics.Error("Watcher error: %v", err)
		}
	}
}

// Close stops a pending run and releases the watcher
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mutex.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.running.Lock()
		defer w.running.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.diagnostics.Info("Description changes detected, regenerating...")
		if err := w.onChange(ctx); err != nil {
			w.diagnostics.Error("Regeneration failed: %v", err)
		}
	})
}

func relevant(event fsnotify.Event) bool {
	if !parser.IsDescriptionFile(event.Name) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
