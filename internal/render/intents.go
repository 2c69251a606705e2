package render

import (
	"strings"

	"github.com/weatherchat/backend/internal/domain"
)

// keywordGroup pairs an intent with the query keywords that trigger it. The
// order of the groups is the fixed priority order of the classifier: sections
// always render in this relative order no matter how the query phrases them.
type keywordGroup struct {
	intent   domain.Intent
	keywords []string
}

var keywordGroups = []keywordGroup{
	{domain.IntentTomorrow, []string{"tomorrow"}},
	{domain.IntentWeek, []string{"week", "7 day", "forecast"}},
	{domain.IntentHourly, []string{"hour", "today"}},
	{domain.IntentRain, []string{"rain", "precipitation", "umbrella", "wet"}},
	{domain.IntentWind, []string{"wind", "breeze", "gust"}},
	{domain.IntentHumidity, []string{"humid", "moisture", "muggy"}},
	{domain.IntentUV, []string{"uv", "sunburn", "sun protection"}},
	{domain.IntentSunriseSunset, []string{"sunrise", "sunset", "sun rise", "sun set"}},
	{domain.IntentTemperature, []string{"temperature", "temp", "hot", "cold", "warm", "degrees"}},
}

// DetectIntents classifies a raw query by keyword matching. The keyword lists
// are English-only, so non-English queries reaching this fallback degrade to
// current_weather; the AI parser is the multilingual path.
func DetectIntents(query string) []domain.Intent {
	lower := strings.ToLower(query)

	var intents []domain.Intent
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				intents = append(intents, group.intent)
				break
			}
		}
	}

	if len(intents) == 0 {
		intents = append(intents, domain.IntentCurrentWeather)
	}
	return intents
}

// IntentsFromParsed maps an AI-classified timeframe and intent onto the
// render intent vocabulary. Both dimensions contribute independently, so
// {timeframe: tomorrow, intent: rain} yields [tomorrow, rain].
func IntentsFromParsed(aiIntent domain.Intent, aiTimeframe domain.Timeframe) []domain.Intent {
	var intents []domain.Intent

	switch aiTimeframe {
	case domain.TimeframeTomorrow:
		intents = append(intents, domain.IntentTomorrow)
	case domain.TimeframeWeek:
		intents = append(intents, domain.IntentWeek)
	case domain.TimeframeHourly:
		intents = append(intents, domain.IntentHourly)
	}

	switch aiIntent {
	case domain.IntentTemperature:
		intents = append(intents, domain.IntentTemperature)
	case domain.IntentRain:
		intents = append(intents, domain.IntentRain)
	case domain.IntentWind:
		intents = append(intents, domain.IntentWind)
	case domain.IntentHumidity:
		intents = append(intents, domain.IntentHumidity)
	case domain.IntentUV:
		intents = append(intents, domain.IntentUV)
	case domain.IntentSunriseSunset:
		intents = append(intents, domain.IntentSunriseSunset)
	case domain.IntentForecast:
		intents = append(intents, domain.IntentWeek)
	case domain.IntentHourly:
		intents = append(intents, domain.IntentHourly)
	case domain.IntentTomorrow:
		intents = append(intents, domain.IntentTomorrow)
	}

	if len(intents) == 0 || aiIntent == domain.IntentCurrentWeather || aiIntent == domain.IntentGeneral {
		intents = append(intents, domain.IntentCurrentWeather)
	}
	return intents
}
