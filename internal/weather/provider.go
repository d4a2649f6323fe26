package weather

import (
	"context"
)

// Provider abstracts one upstream weather source (e.g. WeatherAPI.com,
// Open-Meteo). Fetch performs at most one outbound call per invocation and
// returns the already-normalized snapshot.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q Query) (Snapshot, error)
}
