package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WeatherAPIKey enables the primary weather provider. Empty means the
	// cascade starts at the credential-free secondary.
	WeatherAPIKey string

	// GeminiAPIKey enables model-backed crop suggestions and Q&A. Empty
	// means crop suggestions come from the heuristic generator.
	GeminiAPIKey string

	// HTTPTimeout applies to every outbound call.
	HTTPTimeout time.Duration

	// AlertRefreshInterval controls how often alerts are re-derived for
	// each district.
	AlertRefreshInterval time.Duration

	// Alert store retention.
	AlertMaxPerDistrict int           // max alerts kept per district (0 = unlimited)
	AlertMaxAge         time.Duration // max age of alerts (0 = unlimited)

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Alert refresh interval: default 30 minutes.
	intervalStr := getenvDefault("ALERT_REFRESH_INTERVAL", "30m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_REFRESH_INTERVAL: %w", err)
	}
	cfg.AlertRefreshInterval = interval

	// Alert store retention.
	cfg.AlertMaxPerDistrict = getenvInt("ALERT_MAX_PER_DISTRICT", 10)

	maxAgeStr := getenvDefault("ALERT_MAX_AGE", "48h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_MAX_AGE: %w", err)
	}
	cfg.AlertMaxAge = maxAge

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
