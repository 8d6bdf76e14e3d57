package series

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 50 * time.Millisecond

// Watcher reports a file's series every time the file changes.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch reads Path once, then again after every change, and sends each
// successfully decoded series to onChange. Decode errors are logged and
// skipped so a half-written file does not stop the watch.
//
// Watch blocks until ctx is canceled or the watcher fails. onChange runs on
// the Watch goroutine.
func (w *Watcher) Watch(ctx context.Context, onChange func([]float64)) error {
	log := w.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("series: watch: %w", err)
	}
	defer fw.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place, which drops a watch on the file itself.
	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("series: watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("series: watch %s: %w", filepath.Dir(abs), err)
	}

	load := func() {
		values, err := ReadFile(abs)
		if err != nil {
			log.Warn("series: reload failed", "path", abs, "error", err)
			return
		}
		log.Debug("series: reloaded", "path", abs, "values", len(values))
		onChange(values)
	}
	load()

	// Armed by events only; since Go 1.23 a stopped timer never delivers.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("series: watch: %w", err)
		case <-timer.C:
			load()
		}
	}
}
