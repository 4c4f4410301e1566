package domain

import (
	"sort"
	"time"

	"github.com/stellarus-dev/analytics-dashboard-api/pkg/utils"
)

// FilteredView is the subset of the dataset satisfying the active filter
// criteria. All derivations below are pure functions of Events, so calling
// them repeatedly on the same view yields identical results.
type FilteredView struct {
	Events  []Event       `json:"events"`
	Filters *EventFilters `json:"filters,omitempty"`
}

// Len returns the number of included records.
func (v *FilteredView) Len() int {
	return len(v.Events)
}

// SeriesByType groups the included records by event date, one daily series
// per event type, sorted by date ascending with no gap filling.
func (v *FilteredView) SeriesByType() map[string][]DatePoint {
	buckets := make(map[string]map[time.Time]int)
	for i := range v.Events {
		e := &v.Events[i]
		if buckets[e.EventType] == nil {
			buckets[e.EventType] = make(map[time.Time]int)
		}
		buckets[e.EventType][truncateToDay(e.EventDate)]++
	}

	series := make(map[string][]DatePoint, len(buckets))
	for eventType, byDate := range buckets {
		points := make([]DatePoint, 0, len(byDate))
		for date, count := range byDate {
			points = append(points, DatePoint{Date: date, Count: count})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
		series[eventType] = points
	}

	return series
}

// MonthlyUniqueUsers buckets records of the given event type by calendar
// month and counts distinct user IDs. Rows without a user ID each count as
// their own user, which degrades to plain row counting when the CSV carries
// no user_id column at all.
func (v *FilteredView) MonthlyUniqueUsers(eventType string) []MonthPoint {
	return monthlyUniques(v.Events, func(e *Event) bool { return e.EventType == eventType })
}

// MonthlyByDestination splits link-click records by program destination and
// buckets each destination's unique users by month.
func (v *FilteredView) MonthlyByDestination() map[string][]MonthPoint {
	destinations := make(map[string]struct{})
	for i := range v.Events {
		e := &v.Events[i]
		if e.EventType == EventTypeLinkClick && e.ProgramDestination != "" {
			destinations[e.ProgramDestination] = struct{}{}
		}
	}

	result := make(map[string][]MonthPoint, len(destinations))
	for destination := range destinations {
		result[destination] = monthlyUniques(v.Events, func(e *Event) bool {
			return e.EventType == EventTypeLinkClick && e.ProgramDestination == destination
		})
	}

	return result
}

// CrossoversByBrowser counts unique crossover users per browser, sorted by
// count descending for the donut chart.
func (v *FilteredView) CrossoversByBrowser() []BrowserSlice {
	counts := uniquesBy(v.Events,
		func(e *Event) bool { return e.EventType == EventTypeCrossover && e.Browser != "" },
		func(e *Event) string { return e.Browser },
	)

	slices := make([]BrowserSlice, 0, len(counts))
	for browser, count := range counts {
		slices = append(slices, BrowserSlice{Browser: browser, UniqueUsers: count})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].UniqueUsers != slices[j].UniqueUsers {
			return slices[i].UniqueUsers > slices[j].UniqueUsers
		}
		return slices[i].Browser < slices[j].Browser
	})

	return slices
}

// LinkClicksByDestination counts unique link-click users per program
// destination, sorted by count descending.
func (v *FilteredView) LinkClicksByDestination() []DestinationSlice {
	counts := uniquesBy(v.Events,
		func(e *Event) bool { return e.EventType == EventTypeLinkClick && e.ProgramDestination != "" },
		func(e *Event) string { return e.ProgramDestination },
	)

	slices := make([]DestinationSlice, 0, len(counts))
	for destination, count := range counts {
		slices = append(slices, DestinationSlice{Destination: destination, UniqueUsers: count})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].UniqueUsers != slices[j].UniqueUsers {
			return slices[i].UniqueUsers > slices[j].UniqueUsers
		}
		return slices[i].Destination < slices[j].Destination
	})

	return slices
}

// ConversionTrend merges the monthly crossover and link-click unique-user
// series into the executive overview overlay: both counts plus the monthly
// click conversion as a percentage, zero when a month has no crossovers.
func (v *FilteredView) ConversionTrend() []ConversionPoint {
	crossovers := v.MonthlyUniqueUsers(EventTypeCrossover)
	linkClicks := v.MonthlyUniqueUsers(EventTypeLinkClick)

	byMonth := make(map[time.Time]*ConversionPoint)
	for _, p := range crossovers {
		byMonth[p.Month] = &ConversionPoint{Month: p.Month, Crossovers: p.UniqueUsers}
	}
	for _, p := range linkClicks {
		if existing, ok := byMonth[p.Month]; ok {
			existing.LinkClicks = p.UniqueUsers
		} else {
			byMonth[p.Month] = &ConversionPoint{Month: p.Month, LinkClicks: p.UniqueUsers}
		}
	}

	trend := make([]ConversionPoint, 0, len(byMonth))
	for _, point := range byMonth {
		if point.Crossovers > 0 {
			point.ConversionPct = utils.RoundWithTwoDecimalPlace(float64(point.LinkClicks) / float64(point.Crossovers) * 100)
		}
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month.Before(trend[j].Month) })

	return trend
}

func monthlyUniques(events []Event, include func(*Event) bool) []MonthPoint {
	seen := make(map[time.Time]map[string]struct{})
	counts := make(map[time.Time]int)

	for i := range events {
		e := &events[i]
		if !include(e) {
			continue
		}

		month := time.Date(e.EventDate.Year(), e.EventDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		if e.UserID == "" {
			counts[month]++
			continue
		}

		if seen[month] == nil {
			seen[month] = make(map[string]struct{})
		}
		if _, dup := seen[month][e.UserID]; !dup {
			seen[month][e.UserID] = struct{}{}
			counts[month]++
		}
	}

	points := make([]MonthPoint, 0, len(counts))
	for month, count := range counts {
		points = append(points, MonthPoint{Month: month, UniqueUsers: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month.Before(points[j].Month) })

	return points
}

func uniquesBy(events []Event, include func(*Event) bool, key func(*Event) string) map[string]int {
	seen := make(map[string]map[string]struct{})
	counts := make(map[string]int)

	for i := range events {
		e := &events[i]
		if !include(e) {
			continue
		}

		k := key(e)
		if e.UserID == "" {
			counts[k]++
			continue
		}

		if seen[k] == nil {
			seen[k] = make(map[string]struct{})
		}
		if _, dup := seen[k][e.UserID]; !dup {
			seen[k][e.UserID] = struct{}{}
			counts[k]++
		}
	}

	return counts
}
