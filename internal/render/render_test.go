package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherchat/backend/internal/domain"
)

// snapshot builds a 7-day forecast starting 2025-06-10 with 48 hourly rows.
func snapshot() *domain.WeatherData {
	w := &domain.WeatherData{
		Location: "Riga",
		Country:  "Latvia",
		Timezone: "Europe/Riga",
		Current: domain.CurrentWeather{
			Temperature:         21.6,
			ApparentTemperature: 20.4,
			Humidity:            55,
			WindSpeed:           12.3,
			WindDirection:       180,
			WindGusts:           25.1,
			WeatherCode:         3,
			CloudCover:          60,
			Pressure:            1013.2,
			IsDay:               true,
		},
	}
	for i := 0; i < 7; i++ {
		w.Daily = append(w.Daily, domain.DailyForecast{
			Date:                     fmt.Sprintf("2025-06-%02d", 10+i),
			MaxTemp:                  22 - float64(i),
			MinTemp:                  12 - float64(i),
			ApparentMaxTemp:          21 - float64(i),
			ApparentMinTemp:          11 - float64(i),
			WeatherCode:              3,
			PrecipitationProbability: 10 * i,
			Sunrise:                  fmt.Sprintf("2025-06-%02dT04:31", 10+i),
			Sunset:                   fmt.Sprintf("2025-06-%02dT22:18", 10+i),
			DaylightDuration:         64020,
			UVIndex:                  5.2,
			WindSpeedMax:             15,
			WindGustsMax:             30,
			WindDirection:            190,
		})
	}
	for i := 0; i < 48; i++ {
		w.Hourly = append(w.Hourly, domain.HourlyForecast{
			Time:                     fmt.Sprintf("2025-06-%02dT%02d:00", 10+i/24, i%24),
			Temperature:              18,
			Humidity:                 60,
			PrecipitationProbability: 20,
			WeatherCode:              2,
			WindSpeed:                10,
		})
	}
	return w
}

func TestDetectIntentsPriorityOrder(t *testing.T) {
	// Query order never changes section order.
	assert.Equal(t,
		[]domain.Intent{domain.IntentRain, domain.IntentWind},
		DetectIntents("Any wind or rain coming?"))
	assert.Equal(t,
		[]domain.Intent{domain.IntentRain, domain.IntentWind},
		DetectIntents("will it rain? how about wind?"))
}

func TestDetectIntentsFallback(t *testing.T) {
	assert.Equal(t, []domain.Intent{domain.IntentCurrentWeather}, DetectIntents("Kāds laiks Rīgā?"))
	assert.Equal(t, []domain.Intent{domain.IntentCurrentWeather}, DetectIntents("weather in Riga"))
}

func TestIntentsFromParsed(t *testing.T) {
	assert.Equal(t,
		[]domain.Intent{domain.IntentTomorrow, domain.IntentRain},
		IntentsFromParsed(domain.IntentRain, domain.TimeframeTomorrow))
	assert.Equal(t,
		[]domain.Intent{domain.IntentWeek},
		IntentsFromParsed(domain.IntentForecast, ""))
	assert.Equal(t,
		[]domain.Intent{domain.IntentCurrentWeather},
		IntentsFromParsed(domain.IntentGeneral, ""))
	assert.Equal(t,
		[]domain.Intent{domain.IntentTomorrow, domain.IntentCurrentWeather},
		IntentsFromParsed(domain.IntentCurrentWeather, domain.TimeframeTomorrow))
	assert.Equal(t,
		[]domain.Intent{domain.IntentCurrentWeather},
		IntentsFromParsed("", ""))
}

func TestWeatherResponseMultiSection(t *testing.T) {
	out := WeatherResponse("wind and rain in Riga", snapshot(), "", "", "", domain.LanguageEN)

	parts := strings.Split(out, sectionSeparator)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "Rain forecast for Riga")
	assert.Contains(t, parts[1], "Wind conditions in Riga")
}

func TestWeatherResponseDedup(t *testing.T) {
	// AI timeframe and AI intent both map to hourly: one section, rendered once.
	out := WeatherResponse("", snapshot(), domain.IntentHourly, domain.TimeframeHourly, "", domain.LanguageEN)
	assert.Equal(t, 1, strings.Count(out, "Hourly forecast for Riga"))
	assert.NotContains(t, out, sectionSeparator)
}

func TestWeatherResponseDayAfterTomorrow(t *testing.T) {
	out := WeatherResponse("", snapshot(), domain.IntentGeneral, domain.TimeframeDayAfterTomorrow, "", domain.LanguageEN)
	assert.Contains(t, out, "Day after tomorrow's forecast for Riga")
	assert.Contains(t, out, "10°C — 20°C")
}

func TestWeatherResponseSpecificDate(t *testing.T) {
	w := snapshot()

	out := WeatherResponse("", w, "", "", "2025-06-16", domain.LanguageEN)
	assert.Contains(t, out, "Jun 16")
	assert.Contains(t, out, "forecast for Riga")

	out = WeatherResponse("", w, "", "", "2025-06-09", domain.LanguageEN)
	assert.Contains(t, out, "past dates")

	out = WeatherResponse("", w, "", "", "2025-06-17", domain.LanguageEN)
	assert.Contains(t, out, "too far in the future")

	out = WeatherResponse("", w, "", "", "not-a-date", domain.LanguageEN)
	assert.Contains(t, out, "don't have forecast data")
}

func TestWeatherResponseDeterministic(t *testing.T) {
	w := snapshot()
	first := WeatherResponse("rain in Riga tomorrow", w, "", "", "", domain.LanguageLV)
	second := WeatherResponse("rain in Riga tomorrow", w, "", "", "", domain.LanguageLV)
	assert.Equal(t, first, second)
}

func TestWeatherResponseLocalized(t *testing.T) {
	w := snapshot()
	assert.Contains(t, WeatherResponse("weather", w, "", "", "", domain.LanguageLV), "Pašreizējie laika apstākļi")
	assert.Contains(t, WeatherResponse("weather", w, "", "", "", domain.LanguageRU), "Текущая погода в")
	assert.Contains(t, WeatherResponse("weather", w, "", "", "", domain.LanguageUK), "Поточна погода в")
}

func TestResolveDayOffset(t *testing.T) {
	offset, err := ResolveDayOffset("2025-06-10", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 0, offset)

	offset, err = ResolveDayOffset("2025-06-16", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 6, offset)

	_, err = ResolveDayOffset("2025-06-17", "2025-06-10")
	assert.ErrorIs(t, err, ErrBeyondHorizon)

	_, err = ResolveDayOffset("2025-06-09", "2025-06-10")
	assert.ErrorIs(t, err, ErrPastDate)

	_, err = ResolveDayOffset("garbage", "2025-06-10")
	assert.Error(t, err)
}

func TestErrorResponse(t *testing.T) {
	for _, lang := range domain.SupportedLanguages {
		assert.NotEmpty(t, ErrorResponse(domain.ErrLocationNotFound, lang))
		assert.NotEmpty(t, ErrorResponse(domain.ErrNoLocation, lang))
		assert.NotEmpty(t, ErrorResponse(domain.ErrAPIError, lang))
	}

	assert.NotEqual(t,
		ErrorResponse(domain.ErrNoLocation, domain.LanguageEN),
		ErrorResponse(domain.ErrNoLocation, domain.LanguageLV))

	// Unknown kinds fall back to the api_error text.
	assert.Equal(t,
		ErrorResponse(domain.ErrAPIError, domain.LanguageEN),
		ErrorResponse(domain.ErrorKind("mystery"), domain.LanguageEN))
}
