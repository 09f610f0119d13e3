package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionDenied is returned when no device location is available.
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrLocationNotFound is returned when a city search matches nothing.
	ErrLocationNotFound = errors.New("location not found")
	// ErrTransport wraps network and provider failures.
	ErrTransport = errors.New("weather provider unavailable")
	// ErrSuperseded is returned when a newer fetch was issued before this one completed.
	ErrSuperseded = errors.New("fetch superseded by a newer request")
	// ErrEmptyBucket signals a day bucket without samples.
	ErrEmptyBucket = errors.New("empty day bucket")
	// ErrNoView is returned before the first successful fetch.
	ErrNoView = errors.New("no weather data fetched yet")
)

// MalformedSampleError reports a provider sample that is missing a required
// field or breaks the chronological order of its series.
type MalformedSampleError struct {
	Index  int // position in the series, -1 for the current-weather sample
	Field  string
	Reason string
}

func (e *MalformedSampleError) Error() string {
	return fmt.Sprintf("malformed sample %d: %s %s", e.Index, e.Field, e.Reason)
}

var messages = map[string]map[string]string{
	"en": {
		"permission": "Location access denied",
		"notfound":   "City not found",
		"malformed":  "Weather data is incomplete",
		"transport":  "Failed to fetch weather data",
		"superseded": "A newer request replaced this one",
		"nodata":     "No weather data yet",
		"default":    "Something went wrong",
	},
	"ru": {
		"permission": "Доступ к местоположению запрещен",
		"notfound":   "Город не найден",
		"malformed":  "Данные о погоде неполные",
		"transport":  "Ошибка при получении данных о погоде",
		"superseded": "Запрос заменен более новым",
		"nodata":     "Данные о погоде еще не загружены",
		"default":    "Что-то пошло не так",
	},
}

// UserMessage maps err to a single human-readable message in lang,
// falling back to English.
func UserMessage(err error, lang string) string {
	m, ok := messages[lang]
	if !ok {
		m = messages["en"]
	}

	var malformed *MalformedSampleError
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return m["permission"]
	case errors.Is(err, ErrLocationNotFound):
		return m["notfound"]
	case errors.As(err, &malformed), errors.Is(err, ErrEmptyBucket):
		return m["malformed"]
	case errors.Is(err, ErrTransport):
		return m["transport"]
	case errors.Is(err, ErrSuperseded):
		return m["superseded"]
	case errors.Is(err, ErrNoView):
		return m["nodata"]
	default:
		return m["default"]
	}
}
