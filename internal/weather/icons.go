package weather

import "time"

var iconNames = map[string]string{
	"01d": "weather-sunny",
	"01n": "weather-night",
	"02d": "weather-partly-cloudy",
	"02n": "weather-night-partly-cloudy",
	"03d": "weather-cloudy",
	"03n": "weather-cloudy",
	"04d": "weather-cloudy",
	"04n": "weather-cloudy",
	"09d": "weather-rainy",
	"09n": "weather-rainy",
	"10d": "weather-pouring",
	"10n": "weather-pouring",
	"11d": "weather-lightning",
	"11n": "weather-lightning",
	"13d": "weather-snowy",
	"13n": "weather-snowy",
	"50d": "weather-fog",
	"50n": "weather-fog",
}

// IconName maps a provider condition code to a display icon name.
// Unknown codes fall back to the sunny icon.
func IconName(code string) string {
	if name, ok := iconNames[code]; ok {
		return name
	}
	return "weather-sunny"
}

// IconURL is the provider-hosted image of a condition code.
func IconURL(code string) string {
	return "https://openweathermap.org/img/w/" + code + ".png"
}

var ruWeekdays = [...]string{
	"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
}

// WeekdayLabel returns the weekday name in lang ("ru" or English).
func WeekdayLabel(d time.Weekday, lang string) string {
	if lang == "ru" {
		return ruWeekdays[d]
	}
	return d.String()
}
