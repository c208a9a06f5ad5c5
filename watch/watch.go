// Package watch reloads a datafile.File when its backing file changes on
// disk, so long-running processes pick up hand edits without restarting.
//
// A Watcher takes ownership of the File while it runs: File does no internal
// locking, and the watcher goroutine reloads the document at will. Interact
// with the document inside the OnReload callback, which runs on the watcher
// goroutine, or after Close has returned.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/0xalexb/datafile"
)

// DefaultDebounce is the settle delay during which further filesystem events
// for the watched file coalesce into a single reload. Editors tend to emit
// bursts of events per save.
const DefaultDebounce = 100 * time.Millisecond

// OnReload runs after every reload attempt with the watched File and the
// Load error, nil on success.
type OnReload func(*datafile.File, error)

// Watcher reloads a File when the file it is bound to changes.
type Watcher struct {
	file     *datafile.File
	path     string
	onReload OnReload
	debounce time.Duration

	fsw       *fsnotify.Watcher
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// Option defines a function type for applying configuration options.
type Option func(*Watcher)

// WithDebounce overrides the settle delay events are coalesced by.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New starts watching the File's backing file. The File must have a file
// name, from Load or SetFileName. onReload may be nil when the caller only
// wants the document kept fresh.
func New(file *datafile.File, onReload OnReload, opts ...Option) (*Watcher, error) {
	if file.FileName() == "" {
		return nil, datafile.ErrNoFileName
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fs watcher: %w", err)
	}

	w := &Watcher{
		file:     file,
		path:     filepath.Clean(file.FileName()),
		onReload: onReload,
		debounce: DefaultDebounce,
		fsw:      fsw,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	for _, apply := range opts {
		apply(w)
	}

	// Watch the directory rather than the file itself: editors often save by
	// replacing the file, which would drop a direct watch.
	dir := filepath.Dir(w.path)

	err = fsw.Add(dir)
	if err != nil {
		_ = fsw.Close()

		return nil, fmt.Errorf("watching %q: %w", dir, err)
	}

	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.stopped)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			slog.Error("datafile watcher error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) reload() {
	err := w.file.Load(w.path)
	if err != nil {
		slog.Warn("datafile reload failed", "path", w.path, "error", err)
	}

	if w.onReload != nil {
		w.onReload(w.file, err)
	}
}

// Close stops watching and waits for the watcher goroutine to finish,
// returning ownership of the File to the caller. Close is idempotent.
func (w *Watcher) Close() error {
	var err error

	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})

	<-w.stopped

	if err != nil {
		return fmt.Errorf("closing fs watcher: %w", err)
	}

	return nil
}
