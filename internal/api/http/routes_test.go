package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-forecast/internal/store"
	"github.com/i474232898/weather-forecast/internal/weather"
)

const currentJSON = `{
  "coord": {"lon": 37.62, "lat": 55.75},
  "weather": [{"description": "broken clouds", "icon": "04d"}],
  "main": {"temp": 1.5, "feels_like": -2.4, "pressure": 1015, "humidity": 81},
  "wind": {"speed": 4.1},
  "dt": 1704110400,
  "timezone": 10800,
  "id": 524901,
  "name": "Moscow",
  "sys": {"country": "RU"}
}`

const forecastJSON = `{
  "list": [
    {"dt": 1704067200, "main": {"temp": 0.2, "pressure": 1016, "humidity": 85}, "weather": [{"icon": "13n"}], "wind": {"speed": 3}},
    {"dt": 1704078000, "main": {"temp": 0.9, "pressure": 1016, "humidity": 84}, "weather": [{"icon": "13d"}], "wind": {"speed": 3.4}},
    {"dt": 1704153600, "main": {"temp": -1.1, "pressure": 1018, "humidity": 90}, "weather": [{"icon": "04n"}], "wind": {"speed": 2}}
  ],
  "city": {"id": 524901, "name": "Moscow", "country": "RU", "timezone": 0}
}`

type fakeProvider struct {
	lastUnits weather.UnitSystem
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Current(ctx context.Context, c weather.Coordinates, q weather.Query) (weather.RawCurrent, error) {
	p.lastUnits = q.Units
	var out weather.RawCurrent
	err := json.Unmarshal([]byte(currentJSON), &out)
	return out, err
}

func (p *fakeProvider) Forecast(ctx context.Context, c weather.Coordinates, q weather.Query) (weather.RawForecast, error) {
	var out weather.RawForecast
	err := json.Unmarshal([]byte(forecastJSON), &out)
	return out, err
}

func (p *fakeProvider) FindCity(ctx context.Context, query string, q weather.Query) (weather.RecentLocation, error) {
	if query != "Moscow" {
		return weather.RecentLocation{}, weather.ErrLocationNotFound
	}
	return weather.RecentLocation{ID: 524901, Name: "Moscow", Country: "RU", Latitude: 55.75, Longitude: 37.62}, nil
}

func newTestApp(home *weather.Coordinates) (*fiber.App, *fakeProvider) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	p := &fakeProvider{}
	svc := weather.NewService(store.NewMemoryStore(weather.Metric), p, weather.StaticLocator{Home: home}, weather.ServiceConfig{Lang: "en"})
	RegisterRoutes(app, svc)
	return app, p
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestWeatherBeforeFirstFetch(t *testing.T) {
	app, _ := newTestApp(nil)

	code, body := do(t, app, http.MethodGet, "/api/v1/weather", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "No weather data yet", body["message"])
	assert.Equal(t, true, body["retry"])
}

func TestRefreshWithoutPermission(t *testing.T) {
	app, _ := newTestApp(nil)

	code, body := do(t, app, http.MethodPost, "/api/v1/weather/refresh", "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Location access denied", body["message"])
}

func TestRefreshHome(t *testing.T) {
	app, _ := newTestApp(&weather.Coordinates{Lat: 55.75, Lon: 37.62})

	code, body := do(t, app, http.MethodPost, "/api/v1/weather/refresh", "")
	require.Equal(t, http.StatusOK, code)
	view := body["view"].(map[string]any)
	assert.Len(t, view["daily"], 2)
}

func TestRefreshValidatesCoordinates(t *testing.T) {
	app, _ := newTestApp(nil)

	code, _ := do(t, app, http.MethodPost, "/api/v1/weather/refresh?lat=100&lon=0", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, app, http.MethodPost, "/api/v1/weather/refresh?lat=north&lon=0", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRefreshAndDayDetail(t *testing.T) {
	app, _ := newTestApp(nil)

	code, body := do(t, app, http.MethodPost, "/api/v1/weather/refresh?lat=55.75&lon=37.62", "")
	require.Equal(t, http.StatusOK, code)

	view := body["view"].(map[string]any)
	assert.Equal(t, "metric", view["units"])
	current := view["current"].(map[string]any)
	assert.Equal(t, "2°C", current["temperature"])
	daily := view["daily"].([]any)
	require.Len(t, daily, 2)
	first := daily[0].(map[string]any)
	assert.Equal(t, "2024-01-01", first["date"])
	assert.Equal(t, "1°", first["temp"])

	code, body = do(t, app, http.MethodGet, "/api/v1/weather/days/2024-01-01", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["hourly"], 2)

	code, _ = do(t, app, http.MethodGet, "/api/v1/weather/days/tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, app, http.MethodGet, "/api/v1/weather/days/2030-01-01", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = do(t, app, http.MethodGet, "/api/v1/theme", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, []any{"day", "night"}, body["theme"])
}

func TestSearchAndRecent(t *testing.T) {
	app, _ := newTestApp(nil)

	code, _ := do(t, app, http.MethodGet, "/api/v1/weather/search", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := do(t, app, http.MethodGet, "/api/v1/weather/search?q=Atlantis", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "City not found", body["message"])

	code, body = do(t, app, http.MethodGet, "/api/v1/weather/search?q=Moscow", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["recent"], 1)

	code, _ = do(t, app, http.MethodGet, "/api/v1/weather/search?q=Moscow", "")
	require.Equal(t, http.StatusOK, code)

	code, body = do(t, app, http.MethodGet, "/api/v1/locations/recent", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["locations"], 1)

	code, _ = do(t, app, http.MethodPost, "/api/v1/locations/recent/abc/select", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, app, http.MethodPost, "/api/v1/locations/recent/1/select", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, app, http.MethodPost, "/api/v1/locations/recent/524901/select", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestSetUnits(t *testing.T) {
	app, p := newTestApp(nil)

	code, _ := do(t, app, http.MethodPut, "/api/v1/units", `{"units":"kelvin"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := do(t, app, http.MethodPut, "/api/v1/units", `{"units":"imperial"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "imperial", body["units"])

	code, _ = do(t, app, http.MethodPost, "/api/v1/weather/refresh?lat=1&lon=1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, weather.Imperial, p.lastUnits)

	code, body = do(t, app, http.MethodPut, "/api/v1/units", `{"units":"metric"}`)
	require.Equal(t, http.StatusOK, code)
	view := body["view"].(map[string]any)
	assert.Equal(t, "metric", view["units"])
	assert.Equal(t, weather.Metric, p.lastUnits)
}
