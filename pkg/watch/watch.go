// Package watch signals when a single file changes on disk.
//
// The parent directory is watched rather than the file itself so editors that
// save by renaming a temporary file over the original are still seen. When
// fsnotify is unavailable the watcher polls the file's modification time.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/logging"
)

// DefaultPollInterval is used by the polling fallback
const DefaultPollInterval = time.Second

// Watcher monitors one file
type Watcher struct {
	path string
	// buffered to 1 so bursts of writes coalesce into one signal
	events       chan struct{}
	done         chan struct{}
	once         sync.Once
	polling      atomic.Bool
	pollInterval time.Duration
	log          zerolog.Logger

	mu  sync.Mutex
	fsw *fsnotify.Watcher
}

// Option configures a Watcher
type Option func(*Watcher)

// WithPollInterval sets the interval used when polling
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// WithPolling skips fsnotify and polls from the start
func WithPolling() Option {
	return func(w *Watcher) {
		w.polling.Store(true)
	}
}

// New starts watching path. The file does not need to exist yet but its
// directory does.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", path).
			WithDetail("path", path)
	}
	dir := filepath.Dir(abs)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrFileAccess, "directory %s does not exist", dir).
			WithDetail("path", path)
	}

	w := &Watcher{
		path:         abs,
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: DefaultPollInterval,
		log:          logging.GetLogger("watch").With().Str("path", abs).Logger(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.polling.Load() {
		w.startPolling()
		return w, nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Info().Err(err).Msg("fsnotify unavailable, falling back to polling")
		w.startPolling()
		return w, nil
	}
	if err := fsw.Add(dir); err != nil {
		w.log.Info().Err(err).Msg("Cannot watch directory, falling back to polling")
		_ = fsw.Close()
		w.startPolling()
		return w, nil
	}

	w.fsw = fsw
	go w.watch(fsw)
	return w, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Polling reports whether the watcher fell back to polling
func (w *Watcher) Polling() bool {
	return w.polling.Load()
}

// Events receives one signal per burst of changes
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.fsw != nil {
			if closeErr := w.fsw.Close(); closeErr != nil {
				err = errors.Wrap(closeErr, errors.ErrInternal, "closing fsnotify watcher")
			}
			w.fsw = nil
		}
	})
	return err
}

func (w *Watcher) watch(fsw *fsnotify.Watcher) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.Trace().Str("op", event.Op.String()).Msg("File event")
				w.notify()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.Info().Err(err).Msg("fsnotify error, switching to polling")
			w.mu.Lock()
			if w.fsw != nil {
				_ = w.fsw.Close()
				w.fsw = nil
			}
			w.mu.Unlock()
			w.startPolling()
			return
		}
	}
}

// startPolling records the current modification time before the poll loop
// starts, so changes made after this call are never taken as the baseline.
func (w *Watcher) startPolling() {
	w.polling.Store(true)
	go w.poll(w.modTime())
}

func (w *Watcher) poll(lastMod time.Time) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			mod := w.modTime()
			if !mod.Equal(lastMod) && !mod.IsZero() {
				lastMod = mod
				w.notify()
			}
		}
	}
}

func (w *Watcher) modTime() time.Time {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (w *Watcher) notify() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// Run calls fn once, then again after every change, until ctx is done.
// Errors from fn are logged and do not stop the loop. Run closes w.
func Run(ctx context.Context, w *Watcher, fn func() error) error {
	defer func() { _ = w.Close() }()

	if fn == nil {
		return errors.New(errors.ErrNullArgument, "watch callback is nil")
	}

	call := func() {
		if err := fn(); err != nil {
			w.log.Warn().Err(err).Msg("Watch callback failed")
		}
	}

	call()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Events():
			call()
		}
	}
}
