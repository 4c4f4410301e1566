package domain

import "time"

// EventFilters is the filter criteria collected by the frontend on every
// render cycle. Nil fields mean "unconstrained"; active predicates combine
// with logical AND.
type EventFilters struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Browser   *string    `json:"browser,omitempty"`
}

// Matches reports whether the event satisfies every active predicate.
// Date bounds are inclusive on EventDate; the browser selector is an exact,
// case-sensitive match since source values are pre-normalized.
func (f *EventFilters) Matches(e *Event) bool {
	if f == nil {
		return true
	}

	eventDate := truncateToDay(e.EventDate)

	if f.StartDate != nil && eventDate.Before(truncateToDay(*f.StartDate)) {
		return false
	}

	if f.EndDate != nil && eventDate.After(truncateToDay(*f.EndDate)) {
		return false
	}

	if f.Browser != nil && e.Browser != *f.Browser {
		return false
	}

	return true
}

// truncateToDay normalizes to UTC midnight so two dates on the same calendar
// day compare equal even when one carries a zone offset.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
