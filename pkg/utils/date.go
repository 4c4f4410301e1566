package utils

import "time"

// ParseDate parses a YYYY-MM-DD query parameter. An empty string means the
// bound is unconstrained and yields nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
