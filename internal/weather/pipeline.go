package weather

import (
	"time"
)

// Payloads are the provider responses of one fetch.
type Payloads struct {
	Current  RawCurrent
	Forecast RawForecast
}

// BuildOptions are the inputs of a build that do not come from the provider.
type BuildOptions struct {
	Units UnitSystem
	Lang  string
	Now   time.Time
}

// Build turns the payloads of one fetch into a View. It has no side effects;
// on error nothing of the fetch is usable.
func Build(p Payloads, opts BuildOptions) (View, error) {
	format := FormatFor(opts.Units)

	now, err := Normalize(p.Current.RawSample, opts.Units)
	if err != nil {
		return View{}, err
	}
	samples, err := NormalizeSeries(p.Forecast.List, opts.Units)
	if err != nil {
		return View{}, err
	}

	offset := p.Forecast.City.Timezone
	if offset == 0 {
		offset = p.Current.Timezone
	}
	zone := ZoneFor(offset)

	daily, err := SummarizeAll(BucketByDay(samples, zone), SummaryOptions{
		Units: opts.Units,
		Lang:  opts.Lang,
		Zone:  zone,
	})
	if err != nil {
		return View{}, err
	}

	return View{
		Coordinates: Coordinates{Lat: p.Current.Coord.Lat, Lon: p.Current.Coord.Lon},
		Units:       opts.Units,
		Theme:       ThemeAt(opts.Now, zone),
		UTCOffset:   offset,
		Current:     currentView(p.Current, now, format),
		Daily:       daily,
		UpdatedAt:   opts.Now.UTC(),
	}, nil
}

func currentView(raw RawCurrent, s WeatherSample, f UnitFormat) CurrentView {
	zone := ZoneFor(raw.Timezone)
	clock := func(unix int64) string {
		if unix == 0 {
			return ""
		}
		return time.Unix(unix, 0).In(zone).Format("15:04")
	}

	v := CurrentView{
		City:        raw.Name,
		Country:     raw.Sys.Country,
		Temperature: f.Temperature(s.Temperature),
		Condition:   s.ConditionText,
		Humidity:    Percent(s.HumidityPercent),
		Wind:        f.Speed(s.WindSpeed),
		Pressure:    Pressure(s.PressureHpa),
		IconCode:    s.ConditionCode,
		Icon:        IconName(s.ConditionCode),
		IconURL:     IconURL(s.ConditionCode),
		FeelsLike:   f.Temperature(s.FeelsLike),
		Sunrise:     clock(raw.Sys.Sunrise),
		Sunset:      clock(raw.Sys.Sunset),
		Sample:      s,
	}
	if raw.Visibility != nil {
		v.Visibility = f.Distance(float64(*raw.Visibility))
	}
	if raw.Clouds.All != nil {
		v.Clouds = Percent(*raw.Clouds.All)
	}
	return v
}
