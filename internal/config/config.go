package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-forecast/internal/weather"
)

type AppConfig struct {
	OpenWeatherAPIKey string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration
	// FetchTimeout bounds one refresh (current + forecast).
	FetchTimeout time.Duration
	// FetchInterval controls how often the shown location is refreshed.
	FetchInterval time.Duration

	Units weather.UnitSystem
	Lang  string

	// Home is the device position; nil means location access is not granted.
	Home *weather.Coordinates

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = getenvDuration("FETCH_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	cfg.Units, err = weather.ParseUnitSystem(getenvDefault("WEATHER_UNITS", string(weather.Metric)))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_UNITS: %w", err)
	}

	cfg.Lang = strings.ToLower(getenvDefault("WEATHER_LANG", "en"))
	cfg.Port = getenvDefault("PORT", "8080")

	home, err := loadHome()
	if err != nil {
		return nil, err
	}
	cfg.Home = home

	return cfg, nil
}

func loadHome() (*weather.Coordinates, error) {
	latStr := os.Getenv("HOME_LAT")
	lonStr := os.Getenv("HOME_LON")
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, fmt.Errorf("HOME_LAT and HOME_LON must be set together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("invalid HOME_LAT %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid HOME_LON %q", lonStr)
	}
	return &weather.Coordinates{Lat: lat, Lon: lon}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
