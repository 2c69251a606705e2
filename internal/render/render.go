// Package render turns classified intents and a forecast snapshot into the
// final templated assistant message. Rendering is deterministic: the same
// stored metadata and snapshot always produce byte-identical output.
package render

import (
	"errors"

	"github.com/weatherchat/backend/internal/domain"
	"github.com/weatherchat/backend/internal/i18n"
	"github.com/weatherchat/backend/internal/weathercode"
)

// sectionSeparator joins multiple intent sections in one message.
const sectionSeparator = "\n\n---\n\n"

// WeatherResponse renders the response for one weather turn. The AI fields
// are optional: zero values mean the AI parser contributed nothing and the
// regex classifier runs over the raw query instead.
func WeatherResponse(query string, weather *domain.WeatherData, aiIntent domain.Intent, aiTimeframe domain.Timeframe, aiSpecificDate string, lang domain.Language) string {
	tr := i18n.Get(lang)

	// A specific date short-circuits everything else.
	if aiSpecificDate != "" {
		return specificDateResponse(weather, aiSpecificDate, tr)
	}

	// So does "day after tomorrow", which has no intent of its own.
	if aiTimeframe == domain.TimeframeDayAfterTomorrow {
		return daySection(weather, 2, tr.DayAfterTomorrowForecastFor, tr)
	}

	var intents []domain.Intent
	if aiIntent != "" || aiTimeframe != "" {
		intents = IntentsFromParsed(aiIntent, aiTimeframe)
	} else {
		intents = DetectIntents(query)
	}

	var sections []string
	for _, intent := range intents {
		var section string
		switch intent {
		case domain.IntentTomorrow:
			section = daySection(weather, 1, tr.TomorrowForecastFor, tr)
		case domain.IntentWeek:
			section = weekSection(weather, tr)
		case domain.IntentHourly:
			section = hourlySection(weather, tr)
		case domain.IntentRain:
			section = rainSection(weather, tr)
		case domain.IntentWind:
			section = windSection(weather, tr)
		case domain.IntentHumidity:
			section = humiditySection(weather, tr)
		case domain.IntentUV:
			section = uvSection(weather, tr)
		case domain.IntentSunriseSunset:
			section = sunriseSunsetSection(weather, tr)
		case domain.IntentTemperature:
			section = temperatureSection(weather, tr)
		default:
			section = currentWeatherSection(weather, tr)
		}
		sections = append(sections, section)
	}

	// Two intents can legitimately render identical text (e.g. AI timeframe
	// and AI intent both mapping to hourly); collapse exact duplicates,
	// keeping first-occurrence order.
	seen := make(map[string]struct{}, len(sections))
	unique := sections[:0]
	for _, s := range sections {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}

	return joinSections(unique)
}

func joinSections(sections []string) string {
	out := ""
	for i, s := range sections {
		if i > 0 {
			out += sectionSeparator
		}
		out += s
	}
	return out
}

// specificDateResponse resolves an ISO date against the snapshot's horizon
// and renders the matching single-day template, or the localized explanation
// of why the date cannot be served.
func specificDateResponse(weather *domain.WeatherData, specificDate string, tr *i18n.Strings) string {
	snapshotDate := ""
	if len(weather.Daily) > 0 {
		snapshotDate = weather.Daily[0].Date
	}

	offset, err := ResolveDayOffset(specificDate, snapshotDate)
	switch {
	case err == nil:
	case errors.Is(err, ErrPastDate):
		return tr.PastDateError
	case errors.Is(err, ErrBeyondHorizon):
		return tr.FutureDateError
	default:
		return tr.NoForecastData
	}

	label := weathercode.FormatDate(specificDate) + " " + tr.ForecastFor
	return daySection(weather, offset, label, tr)
}

// ErrorResponse returns the localized message for a failed turn. Unknown
// kinds fall back to the api_error text.
func ErrorResponse(kind domain.ErrorKind, lang domain.Language) string {
	tr := i18n.Get(lang)
	switch kind {
	case domain.ErrLocationNotFound:
		return tr.LocationNotFound
	case domain.ErrNoLocation:
		return tr.NoLocation
	default:
		return tr.APIError
	}
}
