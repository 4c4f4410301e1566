package dataset

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/utils"
)

var requiredColumns = []string{"event_id", "event_timestamp", "event_type"}

// Accepted timestamp layouts, tried in order. The bare date layout covers
// CSVs that only carry event_date precision in event_timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Upstream exports rename the location columns now and then; first non-blank
// candidate wins per row.
var (
	stateColumns   = []string{"state", "member_state", "state_code"}
	cityColumns    = []string{"city", "member_city"}
	zipcodeColumns = []string{"zipcode", "zip", "member_zip"}
)

// Load reads the CSV at path into an immutable Dataset. Every column is read
// as a string (zipcodes keep their leading zeros) and coerced into the typed
// event schema here. Rows with unparsable timestamps are dropped and counted,
// never fatal; a missing file or missing required columns are.
func Load(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrFileNotFound, path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, errors.Wrapf(ErrMalformedData, "parsing %s: %v", path, df.Err)
	}

	records := df.Records()
	if len(records) == 0 {
		return nil, errors.Wrapf(ErrMalformedData, "%s has no header row", path)
	}

	columns := newColumnIndex(records[0])
	if missing := columns.missing(requiredColumns); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMalformedData, "%s is missing required columns: %s", path, strings.Join(missing, ", "))
	}

	events := make([]domain.Event, 0, len(records)-1)
	dropped := 0

	for rowNum, row := range records[1:] {
		timestamp, ok := parseTimestamp(columns.value(row, "event_timestamp"))
		if !ok {
			dropped++
			logrus.WithFields(logrus.Fields{
				"row":             rowNum + 2, // 1-based, counting the header
				"event_timestamp": columns.value(row, "event_timestamp"),
			}).Warn("dataset: dropping row with unparsable timestamp")
			continue
		}

		eventDate, ok := parseTimestamp(columns.value(row, "event_date"))
		if !ok {
			eventDate = timestamp
		}

		events = append(events, domain.Event{
			EventID:            columns.value(row, "event_id"),
			EventTimestamp:     timestamp,
			EventDate:          truncateToDay(eventDate),
			EventType:          domain.NormalizeEventType(columns.value(row, "event_type")),
			State:              columns.coalesce(row, stateColumns...),
			City:               columns.coalesce(row, cityColumns...),
			Zipcode:            columns.coalesce(row, zipcodeColumns...),
			UserID:             columns.value(row, "user_id"),
			SessionID:          columns.value(row, "session_id"),
			TrafficSource:      columns.value(row, "traffic_source"),
			UTMSource:          columns.value(row, "utm_source"),
			UTMMedium:          columns.value(row, "utm_medium"),
			UTMCampaign:        columns.value(row, "utm_campaign"),
			Browser:            columns.value(row, "browser"),
			DeviceType:         columns.value(row, "device_type"),
			PagePath:           columns.value(row, "page_path"),
			LandingPage:        columns.value(row, "landing_page"),
			ProgramDestination: columns.value(row, "program_destination"),
		})
	}

	// Stabilizes chart rendering order regardless of how the export was
	// written.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventTimestamp.Before(events[j].EventTimestamp)
	})

	snapshotID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("dataset: could not generate snapshot ID")
	}

	return &Dataset{
		SnapshotID:    snapshotID,
		Events:        events,
		DroppedRows:   dropped,
		LoadedAt:      time.Now(),
		SourcePath:    path,
		SourceModTime: info.ModTime(),
	}, nil
}

func sourceModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, errors.Wrap(ErrFileNotFound, path)
		}
		return time.Time{}, errors.Wrapf(err, "stat %s", path)
	}
	return info.ModTime(), nil
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// truncateToDay normalizes to UTC midnight so records from exports with
// offset-bearing timestamps compare and bucket on the calendar date alone.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// columnIndex maps normalized (trimmed, lower-cased) header names to their
// position; on duplicate headers the first occurrence wins.
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, exists := idx[normalized]; !exists {
			idx[normalized] = i
		}
	}
	return idx
}

func (c columnIndex) missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := c[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func (c columnIndex) value(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columnIndex) coalesce(row []string, names ...string) string {
	for _, name := range names {
		if v := c.value(row, name); v != "" {
			return v
		}
	}
	return ""
}
