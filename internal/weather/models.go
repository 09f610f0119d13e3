package weather

import (
	"time"
)

// MaxForecastDays is the number of daily summaries kept from a forecast.
const MaxForecastDays = 5

// Theme is the day/night display mode.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// Coordinates identifies a place on the map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherSample is one normalized point-in-time observation.
type WeatherSample struct {
	Timestamp       time.Time  `json:"timestamp"` // always UTC
	Temperature     int        `json:"temperature"`
	FeelsLike       int        `json:"feelsLike"`
	HumidityPercent int        `json:"humidityPercent"`
	WindSpeed       float64    `json:"windSpeed"`
	PressureHpa     float64    `json:"pressureHpa"`
	ConditionCode   string     `json:"conditionCode"`
	ConditionText   string     `json:"conditionText"`
	Units           UnitSystem `json:"units"`
}

// DayBucket collects the samples of one local calendar day.
type DayBucket struct {
	DateKey string
	Date    time.Time // local midnight
	Samples []WeatherSample
}

// HourlyEntry is one sample of a day with its display strings.
type HourlyEntry struct {
	WeatherSample
	Time     string `json:"time"`
	TempText string `json:"tempText"`
	Icon     string `json:"icon"`
	Humidity string `json:"humidity"`
	Wind     string `json:"wind"`
	Pressure string `json:"pressure"`
}

// DailySummary is the reduced, read-only view of one day.
type DailySummary struct {
	DateKey         string        `json:"date"`
	Weekday         string        `json:"weekday"`
	ConditionCode   string        `json:"conditionCode"`
	Icon            string        `json:"icon"`
	MeanTemperature int           `json:"meanTemperature"`
	TemperatureText string        `json:"temp"`
	Hourly          []HourlyEntry `json:"hourly"`
}

// RecentLocation is an entry of the recently viewed locations list.
type RecentLocation struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Coordinates returns the location's position.
func (l RecentLocation) Coordinates() Coordinates {
	return Coordinates{Lat: l.Latitude, Lon: l.Longitude}
}

// CurrentView is the "now" card shown above the forecast.
type CurrentView struct {
	City        string        `json:"city"`
	Country     string        `json:"country"`
	Temperature string        `json:"temperature"`
	Condition   string        `json:"condition"`
	Humidity    string        `json:"humidity"`
	Wind        string        `json:"wind"`
	Pressure    string        `json:"pressure"`
	IconCode    string        `json:"iconCode"`
	Icon        string        `json:"icon"`
	IconURL     string        `json:"iconUrl"`
	FeelsLike   string        `json:"feelsLike"`
	Sunrise     string        `json:"sunrise,omitempty"`
	Sunset      string        `json:"sunset,omitempty"`
	Visibility  string        `json:"visibility,omitempty"`
	Clouds      string        `json:"clouds,omitempty"`
	Sample      WeatherSample `json:"sample"`
}

// View is everything a single fetch publishes.
type View struct {
	FetchID     string         `json:"fetchId"`
	Generation  uint64         `json:"generation"`
	Coordinates Coordinates    `json:"coordinates"`
	Units       UnitSystem     `json:"units"`
	Theme       Theme          `json:"theme"`
	UTCOffset   int            `json:"utcOffset"` // seconds east of UTC
	Current     CurrentView    `json:"current"`
	Daily       []DailySummary `json:"daily"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Day returns the summary for the given date key.
func (v View) Day(dateKey string) (DailySummary, bool) {
	for _, d := range v.Daily {
		if d.DateKey == dateKey {
			return d, true
		}
	}
	return DailySummary{}, false
}
