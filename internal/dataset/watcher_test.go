package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchedStore(t *testing.T) (*Store, *Watcher, string) {
	t.Helper()

	path := writeCSV(t, `event_id,event_timestamp,event_type
e1,2024-01-01,crossover
`)

	store := NewStore(path)
	require.NoError(t, store.Load())

	watcher, err := NewWatcher(store, path)
	require.NoError(t, err)

	return store, watcher, path
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	_, watcher, path := newWatchedStore(t)
	defer watcher.watcher.Close()

	watcher.handle(fsnotify.Event{
		Name: filepath.Join(filepath.Dir(path), "other.csv"),
		Op:   fsnotify.Write,
	})

	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	assert.Nil(t, watcher.pending)
}

func TestWatcher_IgnoresIrrelevantOps(t *testing.T) {
	_, watcher, path := newWatchedStore(t)
	defer watcher.watcher.Close()

	watcher.handle(fsnotify.Event{Name: path, Op: fsnotify.Chmod})

	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	assert.Nil(t, watcher.pending)
}

func TestWatcher_DebouncesWriteBursts(t *testing.T) {
	_, watcher, path := newWatchedStore(t)
	defer watcher.watcher.Close()

	// A burst of writes arms the timer once; each event replaces the pending
	// reload instead of stacking another.
	watcher.handle(fsnotify.Event{Name: path, Op: fsnotify.Write})

	watcher.mu.Lock()
	first := watcher.pending
	watcher.mu.Unlock()
	require.NotNil(t, first)

	watcher.handle(fsnotify.Event{Name: path, Op: fsnotify.Write})

	watcher.mu.Lock()
	second := watcher.pending
	watcher.mu.Unlock()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestWatcher_ReloadsAfterFileChange(t *testing.T) {
	store, watcher, path := newWatchedStore(t)

	first, err := store.Current()
	require.NoError(t, err)

	watcher.Start()
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`event_id,event_timestamp,event_type
e1,2024-01-01,crossover
e2,2024-01-02,link_click
`), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	assert.Eventually(t, func() bool {
		ds, err := store.Current()
		return err == nil && ds != first && ds.Len() == 2
	}, 5*time.Second, 50*time.Millisecond, "store should swap in the rewritten CSV")
}
