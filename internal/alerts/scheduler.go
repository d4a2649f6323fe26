package alerts

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/kisanexpress/advisory-service/internal/weather"
)

// WeatherSource is the slice of the weather service the scheduler needs.
type WeatherSource interface {
	GetWeather(ctx context.Context, district, area string) (weather.Snapshot, error)
}

// Scheduler periodically refreshes weather-derived alerts for the
// configured districts.
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    WeatherSource
	store     *MemoryStore
	districts []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(districts []string, interval time.Duration, source WeatherSource, store *MemoryStore) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		source:    source,
		store:     store,
		districts: districts,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.districts) == 0 {
		log.Println("alerts: no districts configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("alerts: running refresh job")

		var wg sync.WaitGroup
		for _, district := range s.districts {
			district := district
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				snap, err := s.source.GetWeather(ctx, district, "")
				if err != nil {
					log.Printf("alerts: weather fetch failed for %s: %v", district, err)
					return
				}

				s.store.Save(district, FromSnapshot(district, snap, time.Now().UTC()))
			}()
		}
		wg.Wait()
		log.Println("alerts: completed refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
