package domain

import "time"

// EventsResponse is the filtered row subset returned to the frontend.
type EventsResponse struct {
	SnapshotID  string        `json:"snapshot_id"`
	Filters     *EventFilters `json:"filters"`
	Total       int           `json:"total"`
	DroppedRows int           `json:"dropped_rows"`
	Events      []Event       `json:"events"`
}

// KPIResponse carries the tile values for the active filters.
type KPIResponse struct {
	SnapshotID string        `json:"snapshot_id"`
	Filters    *EventFilters `json:"filters"`
	KPIs       *KPISummary   `json:"kpis"`
}

// SeriesResponse carries the daily per-event-type trend series.
type SeriesResponse struct {
	Filters *EventFilters          `json:"filters"`
	Series  map[string][]DatePoint `json:"series"`
}

// ConversionTrendResponse backs the executive overview overlay chart.
type ConversionTrendResponse struct {
	Filters *EventFilters     `json:"filters"`
	Trend   []ConversionPoint `json:"trend"`
}

// CrossoverInsightsResponse backs the website crossovers tab: monthly unique
// users plus the browser breakdown.
type CrossoverInsightsResponse struct {
	Filters   *EventFilters  `json:"filters"`
	Monthly   []MonthPoint   `json:"monthly"`
	ByBrowser []BrowserSlice `json:"by_browser"`
}

// LinkClickInsightsResponse backs the link clicks tab: monthly unique users
// per program destination plus the destination breakdown.
type LinkClickInsightsResponse struct {
	Filters              *EventFilters           `json:"filters"`
	MonthlyByDestination map[string][]MonthPoint `json:"monthly_by_destination"`
	ByDestination        []DestinationSlice      `json:"by_destination"`
}

// FilterOptionsResponse feeds the frontend's filter widgets.
type FilterOptionsResponse struct {
	Browsers    []string   `json:"browsers"`
	MinDate     *time.Time `json:"min_date,omitempty"`
	MaxDate     *time.Time `json:"max_date,omitempty"`
	TotalEvents int        `json:"total_events"`
}
