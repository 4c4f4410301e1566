package dataset

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
)

// Dataset is the in-memory table loaded from the CSV, sorted by event
// timestamp ascending. Immutable after load: filters produce derived views,
// they never mutate the loaded rows, so the handle can be shared read-only
// across sessions without locking.
type Dataset struct {
	SnapshotID    string
	Events        []domain.Event
	DroppedRows   int
	LoadedAt      time.Time
	SourcePath    string
	SourceModTime time.Time
}

// Len returns the number of loaded rows.
func (d *Dataset) Len() int {
	return len(d.Events)
}

// Browsers returns the distinct non-blank browser values, sorted, for the
// frontend's filter dropdown.
func (d *Dataset) Browsers() []string {
	seen := make(map[string]struct{})
	for i := range d.Events {
		if b := d.Events[i].Browser; b != "" {
			seen[b] = struct{}{}
		}
	}

	browsers := make([]string, 0, len(seen))
	for b := range seen {
		browsers = append(browsers, b)
	}
	sort.Strings(browsers)

	return browsers
}

// DateRange returns the min and max event dates. ok is false on an empty
// dataset.
func (d *Dataset) DateRange() (min, max time.Time, ok bool) {
	if len(d.Events) == 0 {
		return time.Time{}, time.Time{}, false
	}

	min, max = d.Events[0].EventDate, d.Events[0].EventDate
	for i := range d.Events {
		date := d.Events[i].EventDate
		if date.Before(min) {
			min = date
		}
		if date.After(max) {
			max = date
		}
	}

	return min, max, true
}

// Provider hands out the current dataset snapshot.
type Provider interface {
	Current() (*Dataset, error)
}

// Store owns the current dataset and swaps in a fresh snapshot when the
// source file changes. Readers always get a complete, immutable handle.
type Store struct {
	path string

	mu      sync.RWMutex
	current *Dataset
}

// NewStore creates a store for the CSV at path. Nothing is loaded until
// Load is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the CSV and replaces the current snapshot unconditionally.
func (s *Store) Load() error {
	ds, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id":  ds.SnapshotID,
		"rows":         ds.Len(),
		"dropped_rows": ds.DroppedRows,
		"path":         ds.SourcePath,
	}).Info("dataset: snapshot loaded")

	return nil
}

// Reload re-reads the CSV only when its modification time moved past the
// loaded snapshot's. Returns whether a new snapshot was swapped in. On
// failure the previous snapshot stays current.
func (s *Store) Reload() (bool, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current != nil {
		modTime, err := sourceModTime(s.path)
		if err != nil {
			return false, err
		}
		if !modTime.After(current.SourceModTime) {
			logrus.WithField("path", s.path).Debug("dataset: source unchanged, keeping snapshot")
			return false, nil
		}
	}

	if err := s.Load(); err != nil {
		return false, err
	}

	return true, nil
}

// Current returns the loaded snapshot, or ErrNotLoaded before the first
// successful Load.
func (s *Store) Current() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNotLoaded
	}

	return s.current, nil
}
