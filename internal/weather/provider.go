package weather

import (
	"context"
)

// RawCondition is one entry of the provider's condition list.
type RawCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// RawMain holds the provider's main measurements. Pointers tell a missing
// field apart from a zero reading.
type RawMain struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *int     `json:"humidity"`
	Pressure  *float64 `json:"pressure"`
}

type RawWind struct {
	Speed *float64 `json:"speed"`
}

// RawSample is one provider sample, as found in the forecast list and at the
// top level of the current-weather payload.
type RawSample struct {
	Dt      int64          `json:"dt"`
	Main    RawMain        `json:"main"`
	Wind    RawWind        `json:"wind"`
	Weather []RawCondition `json:"weather"`
}

type RawCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RawCurrent is the current-weather payload.
type RawCurrent struct {
	RawSample
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Timezone int      `json:"timezone"` // offset from UTC in seconds
	Coord    RawCoord `json:"coord"`
	Sys      struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Visibility *int `json:"visibility"`
	Clouds     struct {
		All *int `json:"all"`
	} `json:"clouds"`
}

// RawForecast is the 3-hour-interval forecast payload.
type RawForecast struct {
	List []RawSample `json:"list"`
	City struct {
		ID       int64    `json:"id"`
		Name     string   `json:"name"`
		Country  string   `json:"country"`
		Timezone int      `json:"timezone"`
		Coord    RawCoord `json:"coord"`
	} `json:"city"`
}

// Query carries the per-request provider options.
type Query struct {
	Units UnitSystem
	Lang  string
}

// Provider abstracts the weather data source (OpenWeatherMap).
type Provider interface {
	Name() string
	Current(ctx context.Context, c Coordinates, q Query) (RawCurrent, error)
	Forecast(ctx context.Context, c Coordinates, q Query) (RawForecast, error)
	// FindCity returns the best match for a free-text city query or ErrLocationNotFound.
	FindCity(ctx context.Context, query string, q Query) (RecentLocation, error)
}

// Locator supplies the device position, or ErrPermissionDenied.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// StaticLocator returns a fixed home position. A nil Home means location
// access was not granted.
type StaticLocator struct {
	Home *Coordinates
}

func (l StaticLocator) Locate(ctx context.Context) (Coordinates, error) {
	if l.Home == nil {
		return Coordinates{}, ErrPermissionDenied
	}
	return *l.Home, nil
}

// Store is the contract the application state must satisfy.
type Store interface {
	// Publish stores v unless a view of a newer generation is already stored.
	Publish(v View) bool
	Latest() (View, error)

	Units() UnitSystem
	SetUnits(u UnitSystem)
	// LastCoordinates returns the position of the latest published view.
	LastCoordinates() (Coordinates, bool)

	RecordLocation(loc RecentLocation) bool
	RecentLocations() []RecentLocation
	RecentLocation(id int64) (RecentLocation, bool)
}
