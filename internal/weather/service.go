package weather

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kisanexpress/advisory-service/internal/region"
)

// ErrUpstream is returned when every provider in the cascade has failed.
// It maps to a 502 at the HTTP boundary.
var ErrUpstream = errors.New("all weather providers failed")

// Service resolves a district and walks an ordered provider cascade. It
// holds no mutable state; concurrent requests share nothing.
type Service struct {
	table     *region.Table
	providers []Provider
}

// NewService creates a Service over the given region table and providers.
// Providers are consulted in slice order: the keyed primary first, the
// credential-free secondary last.
func NewService(table *region.Table, providers []Provider) *Service {
	return &Service{
		table:     table,
		providers: providers,
	}
}

// GetWeather resolves the district to coordinates and tries each provider
// exactly once, in order. There is no retry: the providers are redundant
// alternatives, so a failure is logged and the next provider is consulted.
// Only when the whole cascade is exhausted does an error surface, wrapped
// in ErrUpstream. An unknown district fails fast with region.ErrNotFound.
func (s *Service) GetWeather(ctx context.Context, district, area string) (Snapshot, error) {
	coords, err := s.table.Resolve(district)
	if err != nil {
		return Snapshot{}, err
	}

	q := Query{District: district, Area: area, Coords: coords}

	lastErr := fmt.Errorf("no weather providers configured")
	for _, p := range s.providers {
		snap, err := p.Fetch(ctx, q)
		if err != nil {
			log.Printf("provider %s failed for %s, trying next: %v", p.Name(), district, err)
			lastErr = err
			continue
		}
		return snap, nil
	}

	return Snapshot{}, fmt.Errorf("%w: %v", ErrUpstream, lastErr)
}
