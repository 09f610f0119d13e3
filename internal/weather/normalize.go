package weather

import (
	"time"

	"github.com/i474232898/weather-forecast/internal/common"
)

// Normalize converts one raw provider sample into a WeatherSample in the
// given unit system.
func Normalize(raw RawSample, u UnitSystem) (WeatherSample, error) {
	return normalizeAt(raw, u, -1)
}

func normalizeAt(raw RawSample, u UnitSystem, idx int) (WeatherSample, error) {
	missing := func(field string) error {
		return &MalformedSampleError{Index: idx, Field: field, Reason: "is missing"}
	}

	switch {
	case raw.Main.Temp == nil:
		return WeatherSample{}, missing("temperature")
	case raw.Main.Humidity == nil:
		return WeatherSample{}, missing("humidity")
	case raw.Wind.Speed == nil:
		return WeatherSample{}, missing("wind speed")
	case raw.Main.Pressure == nil:
		return WeatherSample{}, missing("pressure")
	}

	temp := common.RoundHalfUp(*raw.Main.Temp)
	feels := temp
	if raw.Main.FeelsLike != nil {
		feels = common.RoundHalfUp(*raw.Main.FeelsLike)
	}

	s := WeatherSample{
		Timestamp:       time.Unix(raw.Dt, 0).UTC(),
		Temperature:     temp,
		FeelsLike:       feels,
		HumidityPercent: *raw.Main.Humidity,
		WindSpeed:       *raw.Wind.Speed,
		PressureHpa:     *raw.Main.Pressure,
		Units:           u,
	}
	if len(raw.Weather) > 0 {
		s.ConditionCode = raw.Weather[0].Icon
		s.ConditionText = raw.Weather[0].Description
	}
	return s, nil
}

// NormalizeSeries normalizes a chronological series. The series is not
// re-sorted: a timestamp that does not strictly increase is a data error and
// fails the whole series.
func NormalizeSeries(raws []RawSample, u UnitSystem) ([]WeatherSample, error) {
	out := make([]WeatherSample, 0, len(raws))
	for i, raw := range raws {
		s, err := normalizeAt(raw, u, i)
		if err != nil {
			return nil, err
		}
		if i > 0 && !s.Timestamp.After(out[i-1].Timestamp) {
			return nil, &MalformedSampleError{Index: i, Field: "timestamp", Reason: "is out of order"}
		}
		out = append(out, s)
	}
	return out, nil
}
