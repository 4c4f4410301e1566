package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_HappyPath(t *testing.T) {
	// Rows out of order, raw upstream labels, a zipcode with a leading zero
	// and a renamed state column.
	path := writeCSV(t, `event_id,Event_Timestamp,EVENT_TYPE,member_state,zip,user_id,browser,program_destination
e2,2024-01-02 10:30:00,CARE_PROGRAM_CLICKED,KS,01234,u1,Chrome,Kansas
e1,2024-01-01T08:00:00,IN_BOUND_CROSSOVER,KS,66101,u1,Chrome,
e3,2024-01-03,signup,MO,,u2,Safari,
`)

	ds, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 0, ds.DroppedRows)
	assert.NotEmpty(t, ds.SnapshotID)
	assert.Equal(t, path, ds.SourcePath)

	// Sorted by timestamp ascending regardless of file order.
	assert.Equal(t, "e1", ds.Events[0].EventID)
	assert.Equal(t, "e2", ds.Events[1].EventID)
	assert.Equal(t, "e3", ds.Events[2].EventID)

	// Raw labels normalized to the canonical taxonomy.
	assert.Equal(t, domain.EventTypeCrossover, ds.Events[0].EventType)
	assert.Equal(t, domain.EventTypeLinkClick, ds.Events[1].EventType)
	assert.Equal(t, domain.EventTypeSignup, ds.Events[2].EventType)

	// Coalesced columns and preserved leading zero.
	assert.Equal(t, "KS", ds.Events[1].State)
	assert.Equal(t, "01234", ds.Events[1].Zipcode)
	assert.Equal(t, domain.DestinationKansas, ds.Events[1].ProgramDestination)

	// event_date derived from the timestamp when the column is absent.
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), ds.Events[1].EventDate)
}

func TestLoad_DropsUnparsableTimestampRows(t *testing.T) {
	path := writeCSV(t, `event_id,event_timestamp,event_type
e1,2024-01-01,crossover
e2,not-a-date,link_click
e3,,crossover
e4,2024-01-04,link_click
`)

	ds, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 2, ds.DroppedRows)
	assert.Equal(t, "e1", ds.Events[0].EventID)
	assert.Equal(t, "e4", ds.Events[1].EventID)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))

	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoad_MissingRequiredColumns(t *testing.T) {
	path := writeCSV(t, `event_id,browser
e1,Chrome
`)

	_, err := Load(path)

	require.ErrorIs(t, err, ErrMalformedData)
	assert.Contains(t, err.Error(), "event_timestamp")
	assert.Contains(t, err.Error(), "event_type")
}

func TestLoad_OffsetTimestampsNormalizeToUTCDate(t *testing.T) {
	path := writeCSV(t, `event_id,event_timestamp,event_type
e1,2024-01-01T10:00:00+05:00,crossover
e2,2024-01-01T22:00:00-07:00,link_click
`)

	ds, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	utcMidnight := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, utcMidnight, ds.Events[0].EventDate)
	assert.Equal(t, utcMidnight, ds.Events[1].EventDate)

	// Same calendar day from either offset satisfies a date_from on that day.
	from := utcMidnight
	filters := &domain.EventFilters{StartDate: &from, EndDate: &from}
	assert.True(t, filters.Matches(&ds.Events[0]))
	assert.True(t, filters.Matches(&ds.Events[1]))
}

func TestLoad_ExplicitEventDateWins(t *testing.T) {
	path := writeCSV(t, `event_id,event_timestamp,event_type,event_date
e1,2024-01-01T23:30:00,crossover,2024-01-02
`)

	ds, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), ds.Events[0].EventDate)
}

func TestStore_CurrentBeforeLoad(t *testing.T) {
	store := NewStore("whatever.csv")

	_, err := store.Current()

	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestStore_ReloadSkipsUnchangedFile(t *testing.T) {
	path := writeCSV(t, `event_id,event_timestamp,event_type
e1,2024-01-01,crossover
`)

	store := NewStore(path)
	require.NoError(t, store.Load())

	first, err := store.Current()
	require.NoError(t, err)

	swapped, err := store.Reload()

	require.NoError(t, err)
	assert.False(t, swapped)

	second, err := store.Current()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestStore_ReloadSwapsWhenFileChanges(t *testing.T) {
	path := writeCSV(t, `event_id,event_timestamp,event_type
e1,2024-01-01,crossover
`)

	store := NewStore(path)
	require.NoError(t, store.Load())

	require.NoError(t, os.WriteFile(path, []byte(`event_id,event_timestamp,event_type
e1,2024-01-01,crossover
e2,2024-01-02,link_click
`), 0o644))
	// Push mtime clearly past the first snapshot's.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	swapped, err := store.Reload()

	require.NoError(t, err)
	assert.True(t, swapped)

	ds, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}

func TestStore_ReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	path := writeCSV(t, `event_id,event_timestamp,event_type
e1,2024-01-01,crossover
`)

	store := NewStore(path)
	require.NoError(t, store.Load())

	require.NoError(t, os.Remove(path))

	_, err := store.Reload()
	assert.ErrorIs(t, err, ErrFileNotFound)

	ds, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}
