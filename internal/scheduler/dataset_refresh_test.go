package scheduler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarus-dev/analytics-dashboard-api/internal/config"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
)

func newTestStore(t *testing.T) *dataset.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(`event_id,event_timestamp,event_type
e1,2024-01-01,crossover
`), 0o644))

	store := dataset.NewStore(path)
	require.NoError(t, store.Load())

	return store
}

func newTestService(store *dataset.Store) *DatasetRefreshService {
	cfg := &config.Config{}
	cfg.DatasetRefresh.CronSchedule = "*/15 * * * *"
	cfg.DatasetRefresh.Enabled = true

	return NewDatasetRefreshService(store, cfg)
}

func TestStatus_InitialState(t *testing.T) {
	service := newTestService(newTestStore(t))

	status := service.Status()

	assert.True(t, status.Enabled)
	assert.Equal(t, "*/15 * * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
	assert.Empty(t, status.LastError)
}

func TestRunNow_UnchangedFile(t *testing.T) {
	service := newTestService(newTestStore(t))

	require.NoError(t, service.RunNow())

	status := service.Status()
	assert.False(t, status.Running)
	assert.False(t, status.LastSwapped)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
	assert.Empty(t, status.LastError)
}

func TestRunNow_SwapsChangedFile(t *testing.T) {
	store := newTestStore(t)
	service := newTestService(store)

	first, err := store.Current()
	require.NoError(t, err)

	path := first.SourcePath
	require.NoError(t, os.WriteFile(path, []byte(`event_id,event_timestamp,event_type
e1,2024-01-01,crossover
e2,2024-01-02,link_click
`), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	require.NoError(t, service.RunNow())

	assert.True(t, service.Status().LastSwapped)

	ds, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}

func TestRunNow_RejectsWhileRefreshInFlight(t *testing.T) {
	service := newTestService(newTestStore(t))

	// Claim the run slot the way an overlapping cron run would.
	service.mu.Lock()
	service.running = true
	service.mu.Unlock()

	err := service.RunNow()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	service.mu.Lock()
	service.running = false
	service.mu.Unlock()

	require.NoError(t, service.RunNow())
}

func TestRunNow_RecordsFailure(t *testing.T) {
	store := newTestStore(t)
	service := newTestService(store)

	first, err := store.Current()
	require.NoError(t, err)
	require.NoError(t, os.Remove(first.SourcePath))

	require.NoError(t, service.RunNow())

	status := service.Status()
	assert.NotEmpty(t, status.LastError)
	assert.False(t, status.LastSwapped)

	// The previous snapshot stays active.
	ds, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}
