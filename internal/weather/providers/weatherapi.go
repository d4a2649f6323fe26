package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kisanexpress/advisory-service/internal/weather"
	"github.com/sony/gobreaker"
)

// WeatherAPIProvider implements the weather.Provider interface for
// WeatherAPI.com, the keyed primary source.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WeatherAPIProvider{
		name:    "weatherapi.com",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1/current.json",
		client:  client,
		circuit: cb,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, q weather.Query) (weather.Snapshot, error) {
	if p.apiKey == "" {
		return weather.Snapshot{}, fmt.Errorf("weatherapi api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("aqi", "no")
		// WeatherAPI accepts free text or "lat,lon" in "q". When the caller
		// supplied an area qualifier we compose a place query; otherwise the
		// raw district coordinates are used.
		if q.Area != "" {
			values.Set("q", fmt.Sprintf("%s, %s, Kerala, India", q.Area, q.District))
		} else {
			values.Set("q", fmt.Sprintf("%f,%f", q.Coords.Lat, q.Coords.Lon))
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.Snapshot{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Snapshot{}, err
	}

	var payload struct {
		Current struct {
			TempC    *float64 `json:"temp_c"`
			Humidity *float64 `json:"humidity"`
			WindKph  *float64 `json:"wind_kph"`
			PrecipMm *float64 `json:"precip_mm"`
			Cloud    *float64 `json:"cloud"`
		} `json:"current"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.Snapshot{}, err
	}

	return weather.Snapshot{
		Provider:  p.name,
		FetchedAt: time.Now().UTC(),
		Current: weather.Current{
			Temperature2m:      payload.Current.TempC,
			RelativeHumidity2m: payload.Current.Humidity,
			WindSpeed10m:       payload.Current.WindKph,
			Precipitation:      payload.Current.PrecipMm,
			CloudCover:         payload.Current.Cloud,
		},
		Raw: json.RawMessage(body),
	}, nil
}
