package alerts

import "time"

// Severity grades how urgent an alert is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Type classifies what an alert is about. Only weather alerts are
// generated automatically; the other types exist for manually seeded
// advisories.
type Type string

const (
	TypeWeather Type = "weather"
	TypePest    Type = "pest"
	TypeDisease Type = "disease"
	TypePrice   Type = "price"
)

// Alert is a district-scoped advisory with a validity window.
type Alert struct {
	ID          string    `json:"id"`
	District    string    `json:"district"`
	State       string    `json:"state"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Type        Type      `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
	ValidUntil  time.Time `json:"validUntil"`
}
