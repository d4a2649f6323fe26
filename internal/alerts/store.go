package alerts

import (
	"sync"
	"time"
)

// MemoryStore is a concurrency-safe in-memory alert store. Each refresh
// replaces a district's alert set wholesale; reads filter out expired
// entries.
type MemoryStore struct {
	mu sync.RWMutex

	// key: district, value: current alert set
	data map[string][]Alert

	// retention configuration
	maxPerDistrict int           // max number of alerts kept per district (0 = unlimited)
	maxAge         time.Duration // optional max age for alerts
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxPerDistrict is <= 0, it is treated as unlimited.
func NewMemoryStore(maxPerDistrict int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:           make(map[string][]Alert),
		maxPerDistrict: maxPerDistrict,
		maxAge:         maxAge,
	}
}

// Save replaces the alert set for a district and enforces retention.
func (s *MemoryStore) Save(district string, items []Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxPerDistrict > 0 && len(items) > s.maxPerDistrict {
		items = items[:s.maxPerDistrict]
	}
	s.data[district] = items
}

// Active returns non-expired alerts. An empty district returns alerts for
// every district.
func (s *MemoryStore) Active(district string, now time.Time) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Alert
	appendActive := func(items []Alert) {
		for _, a := range items {
			if a.ValidUntil.Before(now) {
				continue
			}
			if s.maxAge > 0 && a.CreatedAt.Before(now.Add(-s.maxAge)) {
				continue
			}
			result = append(result, a)
		}
	}

	if district != "" {
		appendActive(s.data[district])
		return result
	}
	for _, items := range s.data {
		appendActive(items)
	}
	return result
}
