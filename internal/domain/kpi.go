package domain

import "time"

// KPISummary holds the scalar tile values for a filtered view. Recomputed on
// every filter change, never persisted.
type KPISummary struct {
	CrossoverCount   int `json:"crossover_count"`
	LinkClickCount   int `json:"link_click_count"`
	SignupCount      int `json:"signup_count"`
	ImprovementCount int `json:"improvement_count"`
	OtherCount       int `json:"other_count"`
	TotalCount       int `json:"total_count"`

	// ClickConversionRate is link clicks over crossovers. Defined as 0 when
	// there are no crossovers; a zero denominator is a policy decision here,
	// not an error.
	ClickConversionRate float64 `json:"click_conversion_rate"`
}

// DatePoint is one bucket of a daily series. Dates with zero events are
// absent; gap filling is the frontend's call.
type DatePoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// MonthPoint is one bucket of a monthly unique-user series.
type MonthPoint struct {
	Month       time.Time `json:"month"`
	UniqueUsers int       `json:"unique_users"`
}

// BrowserSlice is one slice of the crossovers-by-browser breakdown.
type BrowserSlice struct {
	Browser     string `json:"browser"`
	UniqueUsers int    `json:"unique_users"`
}

// DestinationSlice is one slice of the link-clicks-by-destination breakdown.
type DestinationSlice struct {
	Destination string `json:"destination"`
	UniqueUsers int    `json:"unique_users"`
}

// ConversionPoint is one month of the conversion trend: unique crossover and
// link-click users plus the click conversion expressed as a percentage for
// the overlay chart.
type ConversionPoint struct {
	Month         time.Time `json:"month"`
	Crossovers    int       `json:"crossovers"`
	LinkClicks    int       `json:"link_clicks"`
	ConversionPct float64   `json:"conversion_pct"`
}
