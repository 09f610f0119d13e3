package weather

import "time"

// ThemeFor returns the display theme for a local hour. Hours 6 and 20
// themselves are night.
func ThemeFor(hour int) Theme {
	if hour > 6 && hour < 20 {
		return ThemeDay
	}
	return ThemeNight
}

// ThemeAt returns the theme for the wall-clock time t in zone.
func ThemeAt(t time.Time, zone *time.Location) Theme {
	if zone == nil {
		zone = time.UTC
	}
	return ThemeFor(t.In(zone).Hour())
}
