package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/config"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
)

// DatasetRefreshConfig holds the scheduler knobs for the periodic CSV
// refresh.
type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// RefreshStatus is a snapshot of the refresh job state, exposed through the
// dataset status endpoint.
type RefreshStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastSwapped     bool       `json:"last_swapped"`
	LastError       string     `json:"last_error,omitempty"`
}

// DatasetRefreshService periodically re-checks the CSV's modification time
// and swaps in a fresh snapshot when the file changed. It complements the
// file watcher; on filesystems with working notifications the cron run is a
// cheap no-op.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    DatasetRefreshConfig
	store     *dataset.Store

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastSwapped     bool
	lastError       error
}

// NewDatasetRefreshService creates the refresh scheduler from the global
// config.
func NewDatasetRefreshService(store *dataset.Store, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		Enabled:      appConfig.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("dataset refresh scheduler configured")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		store:     store,
	}
}

// Start schedules the refresh job and stops the scheduler when ctx is
// cancelled. A disabled scheduler is not an error; manual refreshes through
// RunNow still work.
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("dataset refresh scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting dataset refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh()
	})
	if err != nil {
		return errors.Wrap(err, "scheduling dataset refresh")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping dataset refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers a refresh outside the schedule. Returns an error when a
// refresh is already in flight, scheduled or manual.
func (s *DatasetRefreshService) RunNow() error {
	if !s.refresh() {
		return errors.New("dataset refresh already running")
	}
	return nil
}

// Status reports the current job state.
func (s *DatasetRefreshService) Status() RefreshStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := RefreshStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.running,
		LastSwapped:  s.lastSwapped,
	}

	if !s.lastStartedAt.IsZero() {
		startedAt := s.lastStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastCompletedAt.IsZero() {
		completedAt := s.lastCompletedAt
		status.LastCompletedAt = &completedAt
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}

// refresh runs one reload cycle. It reports false when another refresh holds
// the run slot; the decision and the claim happen under one lock so callers
// never mistake a skipped run for a completed one.
func (s *DatasetRefreshService) refresh() bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("dataset refresh already in progress, skipping")
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	swapped, err := s.store.Reload()

	s.mu.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastSwapped = swapped
	s.lastError = err
	s.mu.Unlock()

	if err != nil {
		logrus.WithError(err).Error("dataset refresh failed, previous snapshot stays active")
		return true
	}

	if swapped {
		logrus.Info("dataset refresh swapped in a new snapshot")
	} else {
		logrus.Debug("dataset refresh found no changes")
	}

	return true
}
