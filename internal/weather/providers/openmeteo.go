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

// OpenMeteoProvider implements the weather.Provider interface for
// Open-Meteo, the credential-free secondary source. It only understands
// raw coordinates; any area qualifier is ignored.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "open-meteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		client:  client,
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, q weather.Query) (weather.Snapshot, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", q.Coords.Lat))
		values.Set("longitude", fmt.Sprintf("%f", q.Coords.Lon))
		values.Set("current_weather", "true")

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
		CurrentWeather struct {
			Temperature *float64 `json:"temperature"`
			WindSpeed   *float64 `json:"windspeed"`
		} `json:"current_weather"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.Snapshot{}, err
	}

	// Open-Meteo's current_weather block has no humidity, precipitation or
	// cloud cover; those stay null in the canonical shape.
	return weather.Snapshot{
		Provider:  p.name,
		FetchedAt: time.Now().UTC(),
		Current: weather.Current{
			Temperature2m: payload.CurrentWeather.Temperature,
			WindSpeed10m:  payload.CurrentWeather.WindSpeed,
		},
		Raw: json.RawMessage(body),
	}, nil
}
