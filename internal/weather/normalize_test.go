package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	raw := rawSample(jan1, 12.5, "10d")
	raw.Main.FeelsLike = fp(-2.5)
	raw.Weather = append(raw.Weather, RawCondition{Icon: "01d", Description: "clear sky"})

	s, err := Normalize(raw, Metric)
	require.NoError(t, err)

	assert.Equal(t, at(jan1), s.Timestamp)
	assert.Equal(t, 13, s.Temperature)
	assert.Equal(t, -2, s.FeelsLike)
	assert.Equal(t, 70, s.HumidityPercent)
	assert.Equal(t, 1012.0, s.PressureHpa)
	assert.Equal(t, 3.6, s.WindSpeed)
	assert.Equal(t, "10d", s.ConditionCode)
	assert.Equal(t, "broken clouds", s.ConditionText)
	assert.Equal(t, Metric, s.Units)
}

func TestNormalizeFeelsLikeFallback(t *testing.T) {
	raw := rawSample(jan1, 7.4, "01n")
	raw.Main.FeelsLike = nil
	raw.Weather = nil

	s, err := Normalize(raw, Imperial)
	require.NoError(t, err)
	assert.Equal(t, 7, s.FeelsLike)
	assert.Empty(t, s.ConditionCode)
}

func TestNormalizeMissingFields(t *testing.T) {
	cases := map[string]func(*RawSample){
		"temperature": func(r *RawSample) { r.Main.Temp = nil },
		"humidity":    func(r *RawSample) { r.Main.Humidity = nil },
		"wind speed":  func(r *RawSample) { r.Wind.Speed = nil },
		"pressure":    func(r *RawSample) { r.Main.Pressure = nil },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			raw := rawSample(jan1, 10, "01d")
			mutate(&raw)

			_, err := Normalize(raw, Metric)
			var malformed *MalformedSampleError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, field, malformed.Field)
		})
	}
}

func TestNormalizeSeriesRejectsOutOfOrder(t *testing.T) {
	raws := series(jan1, 4)
	raws[2].Dt = raws[1].Dt

	out, err := NormalizeSeries(raws, Metric)
	var malformed *MalformedSampleError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Index)
	assert.Equal(t, "timestamp", malformed.Field)
	assert.Nil(t, out)
}

func TestNormalizeSeriesFailsAsAWhole(t *testing.T) {
	raws := series(jan1, 10)
	raws[7].Main.Humidity = nil

	out, err := NormalizeSeries(raws, Metric)
	assert.Error(t, err)
	assert.Nil(t, out)
}
