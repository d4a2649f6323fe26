package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kisanexpress/advisory-service/internal/weather"
)

const alertState = "Kerala"

// Threshold values for derived weather alerts. Precipitation is the
// current reading in mm, temperature in °C, wind in km/h.
const (
	heavyRainMm    = 20.0
	moderateRainMm = 5.0
	heatwaveC      = 38.0
	hotC           = 35.0
	strongWindKmh  = 50.0
	breezyWindKmh  = 30.0
)

// FromSnapshot derives weather alerts for a district from a normalized
// snapshot. A null measurement never triggers a rule. At most one alert is
// produced per measurement, at the highest severity whose threshold holds.
func FromSnapshot(district string, snap weather.Snapshot, now time.Time) []Alert {
	var out []Alert

	if p := snap.Current.Precipitation; p != nil {
		switch {
		case *p >= heavyRainMm:
			out = append(out, newAlert(district, now, SeverityHigh,
				"Heavy rainfall warning",
				fmt.Sprintf("Current precipitation of %.1f mm indicates heavy rain. Harvest ready crops and secure drainage.", *p),
				48*time.Hour))
		case *p >= moderateRainMm:
			out = append(out, newAlert(district, now, SeverityMedium,
				"Rainfall advisory",
				fmt.Sprintf("Steady rain of %.1f mm observed. Delay spraying and fertilizer application.", *p),
				24*time.Hour))
		}
	}

	if t := snap.Current.Temperature2m; t != nil {
		switch {
		case *t >= heatwaveC:
			out = append(out, newAlert(district, now, SeverityHigh,
				"Heatwave warning",
				fmt.Sprintf("Temperature of %.1f °C recorded. Irrigate in the evening and shade nursery beds.", *t),
				24*time.Hour))
		case *t >= hotC:
			out = append(out, newAlert(district, now, SeverityMedium,
				"High temperature advisory",
				fmt.Sprintf("Temperature of %.1f °C recorded. Increase irrigation frequency for shallow-rooted crops.", *t),
				24*time.Hour))
		}
	}

	if w := snap.Current.WindSpeed10m; w != nil {
		switch {
		case *w >= strongWindKmh:
			out = append(out, newAlert(district, now, SeverityHigh,
				"Strong wind warning",
				fmt.Sprintf("Wind speed of %.1f km/h recorded. Prop up banana plants and secure pandals.", *w),
				24*time.Hour))
		case *w >= breezyWindKmh:
			out = append(out, newAlert(district, now, SeverityMedium,
				"Wind advisory",
				fmt.Sprintf("Wind speed of %.1f km/h recorded. Postpone spraying operations.", *w),
				12*time.Hour))
		}
	}

	return out
}

func newAlert(district string, now time.Time, sev Severity, title, desc string, validity time.Duration) Alert {
	return Alert{
		ID:          uuid.NewString(),
		District:    district,
		State:       alertState,
		Title:       title,
		Description: desc,
		Severity:    sev,
		Type:        TypeWeather,
		CreatedAt:   now,
		ValidUntil:  now.Add(validity),
	}
}
