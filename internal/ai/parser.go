package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/weatherchat/backend/internal/domain"
)

const parseSystemPrompt = `You are a weather query parser. Extract location, intent, timeframe and specific date from user queries in ANY language.

Today's date is: %s

IMPORTANT vocabulary by language:

Latvian:
- "Rīgā", "Rīga", "Riga" = Riga (capital of Latvia)
- "šodien" = today, "rīt" = tomorrow, "parīt" = day after tomorrow
- "šonedēļ" = this week

Russian:
- "Москва", "Москве" = Moscow
- "Киев", "Киеве" = Kyiv (capital of Ukraine)
- "Санкт-Петербург", "Петербурге" = Saint Petersburg
- "сегодня" = today, "завтра" = tomorrow, "послезавтра" = day after tomorrow
- "погода" = weather, "температура" = temperature, "дождь" = rain

Ukrainian:
- "Київ", "Києві" = Kyiv (capital of Ukraine)
- "Львів", "Львові" = Lviv
- "Одеса", "Одесі" = Odesa
- "Харків", "Харкові" = Kharkiv
- "сьогодні" = today, "завтра" = tomorrow, "післязавтра" = day after tomorrow
- "погода" = weather, "температура" = temperature, "дощ" = rain

IMPORTANT: Pay attention to Cyrillic letters and grammatical cases (nominative vs prepositional). City names may have different endings based on grammar.

Return ONLY valid JSON with this exact structure:
{
  "location": "city name" or null if no location mentioned,
  "intent": one of: "current_weather", "temperature", "forecast", "rain", "wind", "humidity", "uv", "sunrise_sunset", "tomorrow", "hourly", "general",
  "timeframe": one of: "now", "today", "tomorrow", "day_after_tomorrow", "week", "hourly", or null,
  "specificDate": "YYYY-MM-DD" format if a specific date is mentioned, otherwise null
}

Examples:
- "What's the weather in Tokyo?" → {"location": "Tokyo", "intent": "current_weather", "timeframe": "now", "specificDate": null}
- "Will it rain tomorrow in Paris?" → {"location": "Paris", "intent": "rain", "timeframe": "tomorrow", "specificDate": null}
- "Cik būs rīt grādi Rīgā?" (Latvian) → {"location": "Riga", "intent": "temperature", "timeframe": "tomorrow", "specificDate": null}

Return ONLY the JSON object, no other text.`

// Parser turns free-text queries into structured intents via the LLM.
type Parser struct {
	client *Client
	model  string
	now    func() time.Time
}

// NewParser creates a query parser using the given completion model.
func NewParser(client *Client, model string) *Parser {
	return &Parser{client: client, model: model, now: time.Now}
}

// Configured reports whether the AI parse path is available.
func (p *Parser) Configured() bool {
	return p.client.Configured()
}

// Parse extracts a structured query from free text. It returns nil on any
// failure, including a reply that is not the expected JSON shape; callers
// fall back to regex parsing.
func (p *Parser) Parse(ctx context.Context, query string) *domain.ParsedQuery {
	system := fmt.Sprintf(parseSystemPrompt, p.now().Format("2006-01-02"))

	content, err := p.client.Complete(ctx, p.model, system, query, 0, 150)
	if err != nil {
		p.client.logger.Debug().Err(err).Msg("ai query parse failed")
		return nil
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var parsed domain.ParsedQuery
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		p.client.logger.Debug().Err(err).Str("reply", content).Msg("ai query parse returned non-JSON reply")
		return nil
	}

	if parsed.Intent == "" {
		parsed.Intent = domain.IntentGeneral
	}
	return &parsed
}
