package weather

import "time"

// 2024-01-01 00:00:00 UTC, a Monday.
const jan1 = int64(1704067200)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func rawSample(dt int64, temp float64, icon string) RawSample {
	return RawSample{
		Dt: dt,
		Main: RawMain{
			Temp:      fp(temp),
			FeelsLike: fp(temp - 1),
			Humidity:  ip(70),
			Pressure:  fp(1012),
		},
		Wind:    RawWind{Speed: fp(3.6)},
		Weather: []RawCondition{{Main: "Clouds", Description: "broken clouds", Icon: icon}},
	}
}

// series returns n samples every 3 hours starting at start.
func series(start int64, n int) []RawSample {
	out := make([]RawSample, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, rawSample(start+int64(i)*3*3600, float64(10+i%8), "04d"))
	}
	return out
}

func fixturePayloads() Payloads {
	var cur RawCurrent
	cur.RawSample = rawSample(jan1+12*3600, 11.6, "01d")
	cur.ID = 524901
	cur.Name = "Moscow"
	cur.Timezone = 3 * 3600
	cur.Coord = RawCoord{Lat: 55.75, Lon: 37.62}
	cur.Sys.Country = "RU"
	cur.Sys.Sunrise = jan1 + 6*3600
	cur.Sys.Sunset = jan1 + 13*3600
	cur.Visibility = ip(10000)
	cur.Clouds.All = ip(75)

	var fc RawForecast
	fc.List = series(jan1, 40)
	fc.City.ID = 524901
	fc.City.Name = "Moscow"
	fc.City.Country = "RU"
	fc.City.Timezone = 3 * 3600
	return Payloads{Current: cur, Forecast: fc}
}

func at(unix int64) time.Time { return time.Unix(unix, 0).UTC() }
