package weather

import "time"

const dateKeyLayout = "2006-01-02"

// ZoneFor returns a fixed zone for a provider UTC offset in seconds.
func ZoneFor(offsetSeconds int) *time.Location {
	if offsetSeconds == 0 {
		return time.UTC
	}
	return time.FixedZone("", offsetSeconds)
}

// BucketByDay groups chronological samples by their local calendar date in
// loc. Buckets follow first-occurrence order; only the first MaxForecastDays
// dates are kept and samples of later dates are dropped.
func BucketByDay(samples []WeatherSample, loc *time.Location) []DayBucket {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make([]DayBucket, 0, MaxForecastDays)
	for _, s := range samples {
		local := s.Timestamp.In(loc)
		key := local.Format(dateKeyLayout)

		if n := len(buckets); n > 0 && buckets[n-1].DateKey == key {
			buckets[n-1].Samples = append(buckets[n-1].Samples, s)
			continue
		}
		if len(buckets) == MaxForecastDays {
			break
		}
		buckets = append(buckets, DayBucket{
			DateKey: key,
			Date:    time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
			Samples: []WeatherSample{s},
		})
	}
	return buckets
}
