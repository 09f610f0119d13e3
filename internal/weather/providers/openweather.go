package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-forecast/internal/common"
	"github.com/i474232898/weather-forecast/internal/weather"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		httpCfg: HTTPClientConfig{Client: client},
		circuit: newCircuitBreaker("openweather"),
	}
}

// WithBaseURL points the provider at another API root, e.g. a test server.
func (p *OpenWeatherProvider) WithBaseURL(u string) *OpenWeatherProvider {
	p.baseURL = strings.TrimRight(u, "/")
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) Current(ctx context.Context, c weather.Coordinates, q weather.Query) (weather.RawCurrent, error) {
	var payload weather.RawCurrent
	u, err := p.endpoint("weather", coordValues(c), q)
	if err != nil {
		return payload, err
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, u, &payload); err != nil {
		return weather.RawCurrent{}, fmt.Errorf("openweather current: %w", err)
	}
	return payload, nil
}

func (p *OpenWeatherProvider) Forecast(ctx context.Context, c weather.Coordinates, q weather.Query) (weather.RawForecast, error) {
	var payload weather.RawForecast
	u, err := p.endpoint("forecast", coordValues(c), q)
	if err != nil {
		return payload, err
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, u, &payload); err != nil {
		return weather.RawForecast{}, fmt.Errorf("openweather forecast: %w", err)
	}
	return payload, nil
}

// FindCity resolves a free-text city name through the current-weather
// endpoint, which answers 404 for unknown cities.
func (p *OpenWeatherProvider) FindCity(ctx context.Context, query string, q weather.Query) (weather.RecentLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.RecentLocation{}, weather.ErrLocationNotFound
	}

	values := url.Values{}
	values.Set("q", query)
	u, err := p.endpoint("weather", values, q)
	if err != nil {
		return weather.RecentLocation{}, err
	}

	var payload weather.RawCurrent
	if err := getJSON(ctx, p.httpCfg, p.circuit, u, &payload); err != nil {
		var se *statusError
		if errors.As(err, &se) && (se.Code == http.StatusNotFound || common.HasAny(se.Body, "city not found")) {
			return weather.RecentLocation{}, fmt.Errorf("%w: %q", weather.ErrLocationNotFound, query)
		}
		return weather.RecentLocation{}, fmt.Errorf("openweather search: %w", err)
	}
	if payload.ID == 0 {
		return weather.RecentLocation{}, fmt.Errorf("%w: %q", weather.ErrLocationNotFound, query)
	}

	return weather.RecentLocation{
		ID:        payload.ID,
		Name:      payload.Name,
		Country:   payload.Sys.Country,
		Latitude:  payload.Coord.Lat,
		Longitude: payload.Coord.Lon,
	}, nil
}

func (p *OpenWeatherProvider) endpoint(path string, values url.Values, q weather.Query) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("%w: openweather api key is not configured", weather.ErrTransport)
	}
	values.Set("appid", p.apiKey)
	values.Set("units", string(q.Units))
	if q.Lang != "" {
		values.Set("lang", q.Lang)
	}
	return fmt.Sprintf("%s/%s?%s", p.baseURL, path, values.Encode()), nil
}

func coordValues(c weather.Coordinates) url.Values {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(c.Lon, 'f', -1, 64))
	return values
}
