package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives a freshly loaded configuration.
type ReloadFunc func(cfg *Config)

// ErrorFunc receives load and watch errors.
type ErrorFunc func(err error)

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for writes to settle.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the handler for load and watch errors.
func WithErrorHandler(fn ErrorFunc) WatcherOption {
	return func(w *Watcher) {
		if fn != nil {
			w.onError = fn
		}
	}
}

// WithLoader replaces the function used to reload the file.
func WithLoader(load func(path string) (*Config, error)) WatcherOption {
	return func(w *Watcher) {
		if load != nil {
			w.load = load
		}
	}
}

// Watcher reloads a config file when it changes.
//
// The file's directory is watched rather than the file itself so that
// editors which save by renaming a temporary file are observed.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration

	load     func(path string) (*Config, error)
	onReload ReloadFunc
	onError  ErrorFunc

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher starts watching path and calls onReload after each change.
func NewWatcher(path string, onReload ReloadFunc, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		path:     absPath,
		watcher:  fsw,
		debounce: 100 * time.Millisecond,
		load:     Load,
		onReload: onReload,
		onError:  func(error) {},
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// run processes fsnotify events until Close.
func (w *Watcher) run() {
	defer w.wg.Done()

	var pending <-chan time.Time
	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				pending = time.After(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onError(fmt.Errorf("watching %s: %w", w.path, err))

		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

// relevant reports whether ev changes the watched file's content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	cfg, err := w.load(w.path)
	if err != nil {
		w.onError(err)
		return
	}
	if err := cfg.Validate(); err != nil {
		w.onError(err)
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
