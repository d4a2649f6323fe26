package weather

import (
	"encoding/json"
	"time"

	"github.com/kisanexpress/advisory-service/internal/region"
)

// Current holds the canonical measurements of a snapshot. Every field is a
// pointer so that a value the source provider does not expose serializes as
// null rather than zero; consumers must treat null as unknown.
type Current struct {
	Temperature2m      *float64 `json:"temperature_2m"`
	RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
	WindSpeed10m       *float64 `json:"wind_speed_10m"`
	Precipitation      *float64 `json:"precipitation"`
	CloudCover         *float64 `json:"cloudcover"`
}

// Snapshot is the provider-independent weather result for one request.
// Raw retains the original provider payload for diagnostics and display.
// Snapshots live for the request/response cycle only and are never stored
// on the request path.
type Snapshot struct {
	Provider  string          `json:"provider"`
	FetchedAt time.Time       `json:"fetchedAt"` // always UTC
	Current   Current         `json:"current"`
	Raw       json.RawMessage `json:"raw"`
}

// Query identifies the place a provider should fetch weather for. District
// and Coords come from the region table; Area is an optional free-text
// qualifier (village or locality) refining the district.
type Query struct {
	District string
	Area     string
	Coords   region.Coordinates
}
