// Package weathercode maps WMO weather condition codes to human-readable
// descriptions and provides the small formatting helpers shared by response
// templates.
package weathercode

import (
	"math"
	"time"
)

// Severity tiers a weather condition by how disruptive it is.
type Severity string

const (
	SeverityClear    Severity = "clear"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Info describes one WMO weather code.
type Info struct {
	Description string
	Icon        string
	Severity    Severity
}

var codes = map[int]Info{
	0:  {"Clear sky", "☀️", SeverityClear},
	1:  {"Mainly clear", "🌤️", SeverityClear},
	2:  {"Partly cloudy", "⛅", SeverityMild},
	3:  {"Overcast", "☁️", SeverityMild},
	45: {"Foggy", "🌫️", SeverityMild},
	48: {"Depositing rime fog", "🌫️", SeverityMild},
	51: {"Light drizzle", "🌧️", SeverityMild},
	53: {"Moderate drizzle", "🌧️", SeverityModerate},
	55: {"Dense drizzle", "🌧️", SeverityModerate},
	56: {"Light freezing drizzle", "🌧️", SeverityModerate},
	57: {"Dense freezing drizzle", "🌧️", SeveritySevere},
	61: {"Slight rain", "🌧️", SeverityMild},
	63: {"Moderate rain", "🌧️", SeverityModerate},
	65: {"Heavy rain", "🌧️", SeveritySevere},
	66: {"Light freezing rain", "🌧️", SeverityModerate},
	67: {"Heavy freezing rain", "🌧️", SeveritySevere},
	71: {"Slight snow", "🌨️", SeverityMild},
	73: {"Moderate snow", "🌨️", SeverityModerate},
	75: {"Heavy snow", "❄️", SeveritySevere},
	77: {"Snow grains", "🌨️", SeverityMild},
	80: {"Slight rain showers", "🌦️", SeverityMild},
	81: {"Moderate rain showers", "🌦️", SeverityModerate},
	82: {"Violent rain showers", "⛈️", SeveritySevere},
	85: {"Slight snow showers", "🌨️", SeverityMild},
	86: {"Heavy snow showers", "❄️", SeveritySevere},
	95: {"Thunderstorm", "⛈️", SeveritySevere},
	96: {"Thunderstorm with slight hail", "⛈️", SeveritySevere},
	99: {"Thunderstorm with heavy hail", "⛈️", SeveritySevere},
}

// Lookup returns the info for a WMO code, or a harmless placeholder for codes
// the catalog does not know.
func Lookup(code int) Info {
	if info, ok := codes[code]; ok {
		return info
	}
	return Info{Description: "Unknown", Icon: "❓", Severity: SeverityMild}
}

var compass = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection maps degrees to a 16-point compass label.
func WindDirection(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % 16
	return compass[idx]
}

// FormatTime renders an ISO timestamp as a 12-hour clock time, e.g. "3:04 PM".
// Malformed input is returned unchanged rather than failing a whole template.
func FormatTime(iso string) string {
	t, err := parseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format("3:04 PM")
}

// FormatDate renders an ISO date as a short label, e.g. "Mon, Jan 2".
func FormatDate(iso string) string {
	t, err := parseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format("Mon, Jan 2")
}

// parseISO accepts the timestamp shapes Open-Meteo emits: bare dates and
// minute-resolution local times.
func parseISO(iso string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	return time.Parse("2006-01-02T15:04:05", iso)
}
