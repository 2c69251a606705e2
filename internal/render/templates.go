package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/weatherchat/backend/internal/domain"
	"github.com/weatherchat/backend/internal/i18n"
	"github.com/weatherchat/backend/internal/weathercode"
)

// Template functions are pure: each one maps a forecast snapshot and a string
// table to a markdown-ish text section. Displayed temperatures, speeds and
// percentages round half away from zero.

func roundi(v float64) int {
	return int(math.Round(v))
}

// fmtFloat prints a float without a trailing ".0" (so "0.2 mm" but "3 mm").
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func currentWeatherSection(w *domain.WeatherData, tr *i18n.Strings) string {
	info := weathercode.Lookup(w.Current.WeatherCode)
	windDir := weathercode.WindDirection(w.Current.WindDirection)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s, %s** %s\n\n", tr.CurrentWeatherIn, w.Location, w.Country, info.Icon)
	fmt.Fprintf(&b, "%s %s **%d°C** (%s %d°C).\n\n",
		info.Description, tr.With, roundi(w.Current.Temperature), tr.FeelsLike, roundi(w.Current.ApparentTemperature))
	fmt.Fprintf(&b, "• **%s:** %d%%\n", tr.Humidity, w.Current.Humidity)
	fmt.Fprintf(&b, "• **%s:** %d km/h %s %s (%s %d km/h)\n",
		tr.Wind, roundi(w.Current.WindSpeed), tr.FromDirection, windDir, tr.GustsUpTo, roundi(w.Current.WindGusts))
	fmt.Fprintf(&b, "• **%s:** %d%%\n", tr.CloudCover, w.Current.CloudCover)
	fmt.Fprintf(&b, "• **%s:** %d hPa", tr.Pressure, roundi(w.Current.Pressure))
	if w.Current.Precipitation > 0 {
		fmt.Fprintf(&b, "\n• **%s:** %s mm", tr.Precipitation, fmtFloat(w.Current.Precipitation))
	}
	return b.String()
}

func temperatureSection(w *domain.WeatherData, tr *i18n.Strings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** 🌡️\n\n", tr.TemperatureIn, w.Location)
	fmt.Fprintf(&b, "%s **%d°C** (%s %d°C).\n\n",
		tr.RightNowIts, roundi(w.Current.Temperature), tr.FeelsLike, roundi(w.Current.ApparentTemperature))
	if len(w.Daily) > 0 {
		today := w.Daily[0]
		fmt.Fprintf(&b, "%s: **%d°C** — **%d°C**\n\n", tr.TodayRange, roundi(today.MinTemp), roundi(today.MaxTemp))
	}
	fmt.Fprintf(&b, "**%s:**", tr.UpcomingDays)
	for i := 1; i < len(w.Daily) && i < 5; i++ {
		d := w.Daily[i]
		fmt.Fprintf(&b, "\n• %s: %d°C — %d°C", weathercode.FormatDate(d.Date), roundi(d.MinTemp), roundi(d.MaxTemp))
	}
	return b.String()
}

func rainSection(w *domain.WeatherData, tr *i18n.Strings) string {
	next12 := w.Hourly
	if len(next12) > 12 {
		next12 = next12[:12]
	}

	// Rain is "likely" above a 30% hourly probability.
	var rainy []domain.HourlyForecast
	for _, h := range next12 {
		if h.PrecipitationProbability > 30 {
			rainy = append(rainy, h)
		}
	}

	var rainForecast string
	if len(rainy) == 0 {
		rainForecast = tr.NoSignificantRain
	} else {
		maxProb := 0
		peakTime := ""
		for _, h := range rainy {
			if h.PrecipitationProbability > maxProb {
				maxProb = h.PrecipitationProbability
				peakTime = h.Time
			}
		}
		rainForecast = fmt.Sprintf("%s %s %d%% %s %s.",
			tr.RainLikely, tr.PeakProbability, maxProb, tr.Around, weathercode.FormatTime(peakTime))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** 🌧️\n\n", tr.RainForecastFor, w.Location)
	if w.Current.Precipitation > 0 {
		fmt.Fprintf(&b, "**%s:** %s mm\n\n", tr.Current, fmtFloat(w.Current.Precipitation))
	} else {
		fmt.Fprintf(&b, "**%s:** %s\n\n", tr.Current, tr.NoPrecipitation)
	}
	fmt.Fprintf(&b, "**%s:** %s\n\n", tr.Next12Hours, rainForecast)
	fmt.Fprintf(&b, "**%s:**", tr.ThisWeek)
	for i := 0; i < len(w.Daily) && i < 5; i++ {
		d := w.Daily[i]
		emoji := "☀️"
		if d.PrecipitationProbability > 50 {
			emoji = "🌧️"
		} else if d.PrecipitationProbability > 20 {
			emoji = "🌦️"
		}
		fmt.Fprintf(&b, "\n• %s: %d%% %s %s (%s mm %s)",
			weathercode.FormatDate(d.Date), d.PrecipitationProbability, tr.ChanceOf, emoji,
			fmtFloat(d.PrecipitationSum), tr.Expected)
	}
	if len(rainy) > 0 {
		fmt.Fprintf(&b, "\n\n☔ **%s**", tr.UmbrellaAdvice)
	}
	return b.String()
}

func windSection(w *domain.WeatherData, tr *i18n.Strings) string {
	windDir := weathercode.WindDirection(w.Current.WindDirection)

	var advice string
	switch {
	case w.Current.WindGusts > 50:
		advice = "⚠️ " + tr.StrongGusts
	case w.Current.WindSpeed > 30:
		advice = tr.ModerateWinds
	default:
		advice = tr.LightWinds
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** 💨\n\n", tr.WindConditionsIn, w.Location)
	fmt.Fprintf(&b, "**%s:**\n", tr.Current)
	fmt.Fprintf(&b, "• %s: **%d km/h** %s %s\n", tr.Speed, roundi(w.Current.WindSpeed), tr.FromDirection, windDir)
	fmt.Fprintf(&b, "• %s: **%d km/h**\n\n", tr.Gusts, roundi(w.Current.WindGusts))
	b.WriteString(advice)
	fmt.Fprintf(&b, "\n\n**%s, %s:**", tr.ThisWeek, tr.MaxWinds)
	for i := 0; i < len(w.Daily) && i < 5; i++ {
		d := w.Daily[i]
		fmt.Fprintf(&b, "\n• %s: %d km/h (%s %d km/h)",
			weathercode.FormatDate(d.Date), roundi(d.WindSpeedMax), tr.Gusts, roundi(d.WindGustsMax))
	}
	return b.String()
}

func humiditySection(w *domain.WeatherData, tr *i18n.Strings) string {
	var comfort string
	switch {
	case w.Current.Humidity < 30:
		comfort = tr.VeryDry
	case w.Current.Humidity < 50:
		comfort = tr.ComfortableHumidity
	case w.Current.Humidity < 70:
		comfort = tr.ModerateHumidity
	default:
		comfort = tr.HighHumidity
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** 💧\n\n", tr.HumidityIn, w.Location)
	fmt.Fprintf(&b, "**%s:** %d%%\n%s\n\n", tr.Current, w.Current.Humidity, comfort)
	fmt.Fprintf(&b, "**%s:**", tr.Next12Hours)
	for i := 0; i < len(w.Hourly) && i < 12; i += 3 {
		h := w.Hourly[i]
		fmt.Fprintf(&b, "\n• %s: %d%%", weathercode.FormatTime(h.Time), h.Humidity)
	}
	return b.String()
}

func uvSection(w *domain.WeatherData, tr *i18n.Strings) string {
	var todayUV float64
	if len(w.Daily) > 0 {
		todayUV = w.Daily[0].UVIndex
	}

	var advice string
	switch {
	case todayUV >= 11:
		advice = "☠️ **" + tr.ExtremeUV + "**"
	case todayUV >= 8:
		advice = "🔴 **" + tr.VeryHighUV + "**"
	case todayUV >= 6:
		advice = "🟠 **" + tr.HighUV + "**"
	case todayUV >= 3:
		advice = "🟡 **" + tr.ModerateUV + "**"
	default:
		advice = "🟢 **" + tr.LowUV + "**"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** ☀️\n\n", tr.UVIndexFor, w.Location)
	fmt.Fprintf(&b, "**%s:** %s **%d**\n%s\n\n", tr.Today, tr.UVIndex, roundi(todayUV), advice)
	fmt.Fprintf(&b, "**%s:**", tr.ThisWeek)
	for i := 0; i < len(w.Daily) && i < 7; i++ {
		d := w.Daily[i]
		level := "🟢"
		switch {
		case d.UVIndex >= 8:
			level = "🔴"
		case d.UVIndex >= 6:
			level = "🟠"
		case d.UVIndex >= 3:
			level = "🟡"
		}
		fmt.Fprintf(&b, "\n• %s: %s %d", weathercode.FormatDate(d.Date), level, roundi(d.UVIndex))
	}
	return b.String()
}

// daylightHours converts seconds of daylight to hours with one decimal.
func daylightHours(seconds float64) string {
	return fmtFloat(math.Round(seconds/3600*10) / 10)
}

func sunriseSunsetSection(w *domain.WeatherData, tr *i18n.Strings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** 🌅\n\n", tr.SunriseSunsetIn, w.Location)
	if len(w.Daily) > 0 {
		today := w.Daily[0]
		fmt.Fprintf(&b, "**%s:**\n", tr.Today)
		fmt.Fprintf(&b, "• 🌅 %s: **%s**\n", tr.Sunrise, weathercode.FormatTime(today.Sunrise))
		fmt.Fprintf(&b, "• 🌇 %s: **%s**\n", tr.Sunset, weathercode.FormatTime(today.Sunset))
		fmt.Fprintf(&b, "• ☀️ %s: **%s %s**\n\n", tr.Daylight, daylightHours(today.DaylightDuration), tr.Hours)
	}
	fmt.Fprintf(&b, "**%s:**", tr.ThisWeek)
	for i := 0; i < len(w.Daily) && i < 7; i++ {
		d := w.Daily[i]
		fmt.Fprintf(&b, "\n• %s: 🌅 %s → 🌇 %s (%sh)",
			weathercode.FormatDate(d.Date), weathercode.FormatTime(d.Sunrise),
			weathercode.FormatTime(d.Sunset), daylightHours(d.DaylightDuration))
	}
	return b.String()
}

// daySection renders the full single-day template used for tomorrow, the day
// after, and specific dates. label is the already-localized header prefix.
func daySection(w *domain.WeatherData, offset int, label string, tr *i18n.Strings) string {
	day, err := dayAt(w, offset)
	if err != nil {
		return tr.NoForecastData
	}
	info := weathercode.Lookup(day.WeatherCode)
	windDir := weathercode.WindDirection(day.WindDirection)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** %s\n\n", label, w.Location, info.Icon)
	fmt.Fprintf(&b, "**%s**\n\n", info.Description)
	fmt.Fprintf(&b, "• 🌡️ **%s:** %d°C — %d°C\n", tr.Temperature, roundi(day.MinTemp), roundi(day.MaxTemp))
	fmt.Fprintf(&b, "• 🤗 **%s:** %d°C — %d°C\n", tr.FeelsLike, roundi(day.ApparentMinTemp), roundi(day.ApparentMaxTemp))
	fmt.Fprintf(&b, "• 🌧️ **%s:** %d%%\n", tr.RainChance, day.PrecipitationProbability)
	fmt.Fprintf(&b, "• 💨 **%s:** %d km/h %s %s\n", tr.Wind, roundi(day.WindSpeedMax), tr.FromDirection, windDir)
	fmt.Fprintf(&b, "• ☀️ **%s:** %d\n", tr.UVIndex, roundi(day.UVIndex))
	fmt.Fprintf(&b, "• 🌅 **%s:** %s\n", tr.Sunrise, weathercode.FormatTime(day.Sunrise))
	fmt.Fprintf(&b, "• 🌇 **%s:** %s", tr.Sunset, weathercode.FormatTime(day.Sunset))
	return b.String()
}

func weekSection(w *domain.WeatherData, tr *i18n.Strings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** 📅\n", tr.WeekForecastFor, w.Location)
	for _, d := range w.Daily {
		info := weathercode.Lookup(d.WeatherCode)
		fmt.Fprintf(&b, "\n**%s** %s\n%s | %d° — %d° | 🌧️ %d%%\n",
			weathercode.FormatDate(d.Date), info.Icon, info.Description,
			roundi(d.MinTemp), roundi(d.MaxTemp), d.PrecipitationProbability)
	}
	return strings.TrimRight(b.String(), "\n")
}

func hourlySection(w *domain.WeatherData, tr *i18n.Strings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s %s** ⏰\n", tr.HourlyForecastFor, w.Location)
	for i := 0; i < len(w.Hourly) && i < 12; i++ {
		h := w.Hourly[i]
		info := weathercode.Lookup(h.WeatherCode)
		fmt.Fprintf(&b, "\n**%s** %s %d°C | 💧 %d%% | 💨 %d km/h",
			weathercode.FormatTime(h.Time), info.Icon, roundi(h.Temperature),
			h.PrecipitationProbability, roundi(h.WindSpeed))
	}
	return b.String()
}
