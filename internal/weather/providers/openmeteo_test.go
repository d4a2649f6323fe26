package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kisanexpress/advisory-service/internal/region"
	"github.com/kisanexpress/advisory-service/internal/weather"
)

func TestOpenMeteoNormalization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("current_weather"); got != "true" {
			t.Errorf("expected current_weather=true, got %q", got)
		}
		w.Write([]byte(`{"current_weather": {"temperature": 27.1, "windspeed": 8.4, "weathercode": 2}}`))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client())
	p.baseURL = srv.URL

	snap, err := p.Fetch(context.Background(), weather.Query{
		District: "Kottayam",
		Coords:   region.Coordinates{Lat: 9.591566, Lon: 76.522116},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.Provider != "open-meteo" {
		t.Fatalf("expected provider open-meteo, got %q", snap.Provider)
	}
	cur := snap.Current
	if cur.Temperature2m == nil || *cur.Temperature2m != 27.1 {
		t.Fatalf("unexpected temperature: %v", cur.Temperature2m)
	}
	if cur.WindSpeed10m == nil || *cur.WindSpeed10m != 8.4 {
		t.Fatalf("unexpected wind speed: %v", cur.WindSpeed10m)
	}
	// Open-Meteo never supplies these; they must be null, not zero.
	if cur.RelativeHumidity2m != nil || cur.Precipitation != nil || cur.CloudCover != nil {
		t.Fatalf("expected unsupported fields to stay null, got %+v", cur)
	}
	if len(snap.Raw) == 0 {
		t.Fatal("expected raw payload to be retained")
	}
}

func TestOpenMeteoServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client())
	p.baseURL = srv.URL

	if _, err := p.Fetch(context.Background(), weather.Query{District: "Kottayam"}); err == nil {
		t.Fatal("expected error on 5xx response")
	}
}
