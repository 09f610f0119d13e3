package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/i474232898/weather-forecast/internal/common"
)

// UnitSystem selects how quantities are expressed.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// UnitFormat describes display suffixes and rounding rules of a unit system.
type UnitFormat struct {
	TemperatureSuffix string
	SpeedSuffix       string
	DistanceSuffix    string
	// DistanceDivisor converts provider metres into the display distance unit.
	DistanceDivisor float64
}

var unitFormats = map[UnitSystem]UnitFormat{
	Metric: {
		TemperatureSuffix: "°C",
		SpeedSuffix:       "m/s",
		DistanceSuffix:    "km",
		DistanceDivisor:   1000,
	},
	Imperial: {
		TemperatureSuffix: "°F",
		SpeedSuffix:       "mph",
		DistanceSuffix:    "mi",
		DistanceDivisor:   1609.344,
	},
}

// ParseUnitSystem validates a user supplied unit system.
func ParseUnitSystem(s string) (UnitSystem, error) {
	u := UnitSystem(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := unitFormats[u]; !ok {
		return "", fmt.Errorf("unknown unit system %q", s)
	}
	return u, nil
}

// FormatFor returns the display format of u. It panics on an unknown unit
// system; values from outside must go through ParseUnitSystem first.
func FormatFor(u UnitSystem) UnitFormat {
	f, ok := unitFormats[u]
	if !ok {
		panic(fmt.Sprintf("weather: unknown unit system %q", string(u)))
	}
	return f
}

// Toggle returns the other unit system.
func (u UnitSystem) Toggle() UnitSystem {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

// Temperature renders a rounded temperature with the unit suffix, e.g. "12°C".
func (f UnitFormat) Temperature(v int) string {
	return strconv.Itoa(v) + f.TemperatureSuffix
}

// Speed renders a wind speed rounded to a whole unit, e.g. "4 m/s".
func (f UnitFormat) Speed(v float64) string {
	return fmt.Sprintf("%d %s", common.RoundHalfUp(v), f.SpeedSuffix)
}

// Distance converts metres into the display unit, e.g. "10 km".
func (f UnitFormat) Distance(metres float64) string {
	d := metres / f.DistanceDivisor
	return strconv.FormatFloat(math.Round(d*10)/10, 'f', -1, 64) + " " + f.DistanceSuffix
}

// Degrees renders a temperature without the scale letter, e.g. "12°".
func Degrees(v int) string {
	return strconv.Itoa(v) + "°"
}

// Percent renders a percentage, e.g. "81%".
func Percent(v int) string {
	return strconv.Itoa(v) + "%"
}

// Pressure renders a pressure value in hectopascal.
func Pressure(hpa float64) string {
	return strconv.FormatFloat(hpa, 'f', -1, 64) + " hPa"
}
