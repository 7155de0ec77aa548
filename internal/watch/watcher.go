// Package watch reports changes inside the directory the browser is
// showing, so the listing can refresh without an explicit reload. It wraps
// fsnotify and follows the browser around: watching a new directory drops
// the previous one.
package watch

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"pickd/internal/errors"
	"pickd/internal/log"
)

// DefaultIgnores are glob patterns for the scratch files editors drop next
// to the file being edited. Events on them would otherwise refresh the
// listing constantly during an edit.
var DefaultIgnores = []string{"*.swp", "*.swo", "*~", ".#*", "4913"}

// Event records one relevant change inside the watched directory.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches a single directory for changes that affect its listing.
// Events coalesce: the channel holds at most one pending event, because a
// single refresh picks up any number of changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan Event
	ignores   []glob.Glob

	mutex   sync.Mutex
	dir     string
	running bool
	stop    chan struct{}
}

// New creates a watcher with the default ignore patterns compiled.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create watcher")
	}

	ignores := make([]glob.Glob, 0, len(DefaultIgnores))
	for _, pattern := range DefaultIgnores {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "bad ignore pattern %s", pattern)
		}
		ignores = append(ignores, g)
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan Event, 1),
		ignores:   ignores,
	}, nil
}

// Watch points the watcher at dir, dropping the previously watched
// directory. Watching the directory already watched is a no-op.
func (w *Watcher) Watch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "error accessing directory")
	}
	if !info.IsDir() {
		return errors.Newf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			// The old directory may already be gone, taking its watch
			// with it.
			log.LogWithFields(log.F("directory", w.dir), log.F("error", err)).Debug("Dropping previous watch failed")
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch directory %s", dir)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Dir returns the directory currently watched.
func (w *Watcher) Dir() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.dir
}

// Events returns the channel that delivers change events. The channel is
// closed once the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins delivering events. A watcher can be started once; after Stop
// it is done for good.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.stop = make(chan struct{})
	w.mutex.Unlock()

	go w.loop()

	log.Debug("Watcher started")
	return nil
}

// loop owns the events channel: it is the only sender and closes it on the
// way out, so consumers can range until shutdown.
func (w *Watcher) loop() {
	defer close(w.events)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !relevant(event.Op) || w.ignored(event.Name) {
				continue
			}
			select {
			case w.events <- Event{Path: event.Name, Op: event.Op}:
			default:
				// A refresh is already pending and covers this change too
				log.LogWithFields(log.F("file", event.Name)).Debug("Refresh pending, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("Watcher error")

		case <-w.stop:
			return
		}
	}
}

// Stop halts event delivery and releases the underlying watches. Stopping
// a watcher that never started still releases its resources.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		w.running = false
		close(w.stop)
	}
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing watcher")
	}
	log.Debug("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.running
}

// relevant reports whether op changes what a directory listing shows.
// Chmod is excluded: permission churn alters neither names nor kinds.
func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}

// ignored reports whether the event path matches an ignore pattern.
// Patterns apply to the base name only.
func (w *Watcher) ignored(path string) bool {
	name := filepath.Base(path)
	for _, g := range w.ignores {
		if g.Match(name) {
			return true
		}
	}
	return false
}
