package dataset

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Editors and exports rewrite the CSV in bursts; coalesce events before
// triggering a reload.
const watchDebounce = 500 * time.Millisecond

// Watcher reloads the store when the CSV file changes on disk. It watches
// the parent directory because most writers replace the file via rename,
// which drops a watch placed on the file itself.
type Watcher struct {
	store   *Store
	path    string
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *time.Timer
	done    chan struct{}
}

// NewWatcher creates a watcher for the store's CSV at path.
func NewWatcher(store *Store, path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, errors.Wrapf(err, "watching %s", filepath.Dir(path))
	}

	return &Watcher{
		store:   store,
		path:    path,
		watcher: fsWatcher,
		done:    make(chan struct{}),
	}, nil
}

// Start consumes filesystem events until Stop is called.
func (w *Watcher) Start() {
	logrus.WithField("path", w.path).Info("dataset: file watcher started")

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.handle(event)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logrus.WithError(err).Warn("dataset: file watcher error")
			case <-w.done:
				return
			}
		}
	}()
}

// Stop shuts the watcher down and cancels any pending reload.
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()

	logrus.WithField("path", w.path).Info("dataset: file watcher stopped")
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(watchDebounce, w.reload)
}

func (w *Watcher) reload() {
	swapped, err := w.store.Reload()
	if err != nil {
		logrus.WithError(err).Error("dataset: reload after file change failed, keeping previous snapshot")
		return
	}
	if swapped {
		logrus.WithField("path", w.path).Info("dataset: reloaded after file change")
	}
}
