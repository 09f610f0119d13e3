package weather

import (
	"fmt"
	"time"

	"github.com/i474232898/weather-forecast/internal/common"
)

// SummaryOptions controls the display side of summaries.
type SummaryOptions struct {
	Units UnitSystem
	Lang  string
	Zone  *time.Location
}

// Summarize reduces one day bucket to its DailySummary. The mean temperature
// is rounded half-up; the representative condition is the sample in the
// middle of the bucket, not the most frequent one.
func Summarize(b DayBucket, opts SummaryOptions) (DailySummary, error) {
	if len(b.Samples) == 0 {
		return DailySummary{}, fmt.Errorf("%w: %s", ErrEmptyBucket, b.DateKey)
	}
	format := FormatFor(opts.Units)
	zone := opts.Zone
	if zone == nil {
		zone = time.UTC
	}

	var sum int
	hourly := make([]HourlyEntry, 0, len(b.Samples))
	for _, s := range b.Samples {
		sum += s.Temperature
		hourly = append(hourly, HourlyEntry{
			WeatherSample: s,
			Time:          s.Timestamp.In(zone).Format("15:04"),
			TempText:      Degrees(s.Temperature),
			Icon:          IconName(s.ConditionCode),
			Humidity:      Percent(s.HumidityPercent),
			Wind:          format.Speed(s.WindSpeed),
			Pressure:      Pressure(s.PressureHpa),
		})
	}

	mean := common.RoundHalfUp(float64(sum) / float64(len(b.Samples)))
	rep := b.Samples[len(b.Samples)/2].ConditionCode

	return DailySummary{
		DateKey:         b.DateKey,
		Weekday:         WeekdayLabel(b.Date.Weekday(), opts.Lang),
		ConditionCode:   rep,
		Icon:            IconName(rep),
		MeanTemperature: mean,
		TemperatureText: Degrees(mean),
		Hourly:          hourly,
	}, nil
}

// SummarizeAll summarizes every bucket in order. It fails as a whole.
func SummarizeAll(buckets []DayBucket, opts SummaryOptions) ([]DailySummary, error) {
	out := make([]DailySummary, 0, len(buckets))
	for _, b := range buckets {
		d, err := Summarize(b, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
