package ai

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/weatherchat/backend/internal/domain"
	"github.com/weatherchat/backend/internal/weathercode"
)

type languageInstruction struct {
	name     string
	examples string
}

var insightLanguages = map[domain.Language]languageInstruction{
	domain.LanguageEN: {
		name: "English",
		examples: `Examples:
- "Perfect day for outdoor activities! Don't forget sunscreen."
- "Looks like rain is coming - grab an umbrella before heading out."
- "Chilly but clear today. A warm jacket will keep you comfortable."`,
	},
	domain.LanguageLV: {
		name: "Latvian (latviešu valodā)",
		examples: `Piemēri latviešu valodā:
- "Lieliska diena aktivitātēm ārā! Neaizmirsti sauļošanās krēmu."
- "Gaidāms lietus - paņem līdzi lietussargu."
- "Vēss, bet skaidrs laiks. Silta jaka noderēs."
- "Sniegots laiks - ģērbies silti un uzmanies uz slideniem ceļiem."`,
	},
	domain.LanguageRU: {
		name: "Russian (на русском языке)",
		examples: `Примеры на русском:
- "Отличный день для прогулки! Не забудьте солнцезащитный крем."
- "Ожидается дождь - захватите зонт."
- "Прохладно, но ясно. Тёплая куртка пригодится."
- "Снежная погода - одевайтесь тепло и осторожно на дорогах."`,
	},
	domain.LanguageUK: {
		name: "Ukrainian (українською мовою)",
		examples: `Приклади українською:
- "Чудовий день для прогулянки! Не забудьте сонцезахисний крем."
- "Очікується дощ - візьміть парасольку."
- "Прохолодно, але ясно. Тепла куртка знадобиться."
- "Сніжна погода - одягайтесь тепло та обережно на дорогах."`,
	},
}

// Insights generates short localized weather tips from a forecast snapshot.
type Insights struct {
	client  *Client
	model   string
	enabled bool
}

// NewInsights creates a tip generator. enabled gates the feature regardless
// of client configuration.
func NewInsights(client *Client, model string, enabled bool) *Insights {
	return &Insights{client: client, model: model, enabled: enabled}
}

// Enabled reports whether tip generation should run at all.
func (g *Insights) Enabled() bool {
	return g.enabled && g.client.Configured()
}

// WeatherSummary renders the fixed-format plain-text block the tip prompt is
// fed. It is built only from the snapshot, never from user text.
func WeatherSummary(weather *domain.WeatherData) string {
	info := weathercode.Lookup(weather.Current.WeatherCode)

	var rainProb int
	var uvIndex float64
	if len(weather.Daily) > 0 {
		rainProb = weather.Daily[0].PrecipitationProbability
		uvIndex = weather.Daily[0].UVIndex
	}

	return strings.TrimSpace(fmt.Sprintf(`Temperature: %.0f°C (feels like %.0f°C)
Conditions: %s
Wind: %.0f km/h
Rain probability: %d%%
UV index: %.0f`,
		math.Round(weather.Current.Temperature),
		math.Round(weather.Current.ApparentTemperature),
		info.Description,
		math.Round(weather.Current.WindSpeed),
		rainProb,
		math.Round(uvIndex)))
}

// Generate produces a 1-2 sentence weather tip in the requested language.
// Empty string means no tip; failures are logged, never surfaced.
func (g *Insights) Generate(ctx context.Context, weather *domain.WeatherData, lang domain.Language) string {
	if !g.Enabled() || weather == nil {
		return ""
	}

	langInfo, ok := insightLanguages[lang]
	if !ok {
		langInfo = insightLanguages[domain.LanguageEN]
	}

	system := fmt.Sprintf(`You are a weather assistant. Write a short, friendly weather tip in %s.

IMPORTANT RULES:
- Write ONLY 1-2 sentences
- Write ONLY in %s - no other language
- Give practical advice (umbrella, jacket, sunscreen, etc.)
- Be natural and conversational
- Do NOT include numbers or repeat weather data

%s`, langInfo.name, langInfo.name, langInfo.examples)

	tip, err := g.client.Complete(ctx, g.model, system, WeatherSummary(weather), 0.6, 80)
	if err != nil {
		g.client.logger.Debug().Err(err).Msg("insight generation failed")
		return ""
	}
	return strings.TrimSpace(tip)
}
