package domain

import (
	"strings"
	"time"
)

// Canonical event types tracked by the dashboard. The raw CSV carries
// upstream labels (IN_BOUND_CROSSOVER, CARE_PROGRAM_CLICKED) that are
// normalized at load time; anything outside the mapping is kept as-is,
// lower-cased.
const (
	EventTypeCrossover   = "crossover"
	EventTypeLinkClick   = "link_click"
	EventTypeSignup      = "signup"
	EventTypeImprovement = "improvement"
)

// Known program destinations for link-click events.
const (
	DestinationKansas = "Kansas"
	DestinationVirta  = "Virta"
)

var rawEventTypeMapping = map[string]string{
	"IN_BOUND_CROSSOVER":   EventTypeCrossover,
	"CARE_PROGRAM_CLICKED": EventTypeLinkClick,
}

// NormalizeEventType converts a raw CSV event_type label to its canonical
// form.
func NormalizeEventType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := rawEventTypeMapping[strings.ToUpper(trimmed)]; ok {
		return canonical
	}
	return strings.ToLower(trimmed)
}

// Event is one row of the analytics CSV with a fixed, typed schema.
// Zipcode stays a string so leading zeros survive the load.
type Event struct {
	EventID            string    `json:"event_id"`
	EventTimestamp     time.Time `json:"event_timestamp"`
	EventDate          time.Time `json:"event_date"`
	EventType          string    `json:"event_type"`
	State              string    `json:"state,omitempty"`
	City               string    `json:"city,omitempty"`
	Zipcode            string    `json:"zipcode,omitempty"`
	UserID             string    `json:"user_id,omitempty"`
	SessionID          string    `json:"session_id,omitempty"`
	TrafficSource      string    `json:"traffic_source,omitempty"`
	UTMSource          string    `json:"utm_source,omitempty"`
	UTMMedium          string    `json:"utm_medium,omitempty"`
	UTMCampaign        string    `json:"utm_campaign,omitempty"`
	Browser            string    `json:"browser,omitempty"`
	DeviceType         string    `json:"device_type,omitempty"`
	PagePath           string    `json:"page_path,omitempty"`
	LandingPage        string    `json:"landing_page,omitempty"`
	ProgramDestination string    `json:"program_destination,omitempty"`
}
