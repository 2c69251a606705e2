package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherchat/backend/internal/domain"
)

// completionServer replies to chat completions with a fixed assistant message.
func completionServer(t *testing.T, reply string, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if capture != nil {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, capture))
		}
		resp := fmt.Sprintf(`{"choices":[{"message":{"content":%q}}]}`, reply)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resp))
	}))
}

func TestParseValidReply(t *testing.T) {
	var req chatRequest
	srv := completionServer(t, `{"location":"Riga","intent":"temperature","timeframe":"tomorrow","specificDate":null}`, &req)
	defer srv.Close()

	p := NewParser(NewClient("test-key", srv.URL), "test-model")
	p.now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }

	parsed := p.Parse(context.Background(), "Cik būs rīt grādi Rīgā?")
	require.NotNil(t, parsed)
	assert.Equal(t, "Riga", parsed.Location)
	assert.Equal(t, domain.IntentTemperature, parsed.Intent)
	assert.Equal(t, domain.TimeframeTomorrow, parsed.Timeframe)
	assert.Empty(t, parsed.SpecificDate)

	assert.Equal(t, "test-model", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Contains(t, req.Messages[0].Content, "Today's date is: 2025-06-10")
	assert.Equal(t, "Cik būs rīt grādi Rīgā?", req.Messages[1].Content)
}

func TestParseNonJSONReply(t *testing.T) {
	srv := completionServer(t, "Sure! Here is the parsed query: location=Riga", nil)
	defer srv.Close()

	p := NewParser(NewClient("test-key", srv.URL), "test-model")
	assert.Nil(t, p.Parse(context.Background(), "weather in Riga"))
}

func TestParseDefaultsEmptyIntent(t *testing.T) {
	srv := completionServer(t, `{"location":"Oslo"}`, nil)
	defer srv.Close()

	p := NewParser(NewClient("test-key", srv.URL), "test-model")
	parsed := p.Parse(context.Background(), "Oslo")
	require.NotNil(t, parsed)
	assert.Equal(t, domain.IntentGeneral, parsed.Intent)
}

func TestParseUnconfigured(t *testing.T) {
	p := NewParser(NewClient("", ""), "test-model")
	assert.False(t, p.Configured())
	assert.Nil(t, p.Parse(context.Background(), "weather in Riga"))
}

func TestCompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient("test-key", srv.URL).Complete(context.Background(), "m", "s", "u", 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestWeatherSummary(t *testing.T) {
	weather := &domain.WeatherData{
		Current: domain.CurrentWeather{
			Temperature:         21.6,
			ApparentTemperature: 20.4,
			WindSpeed:           12.3,
			WeatherCode:         3,
		},
		Daily: []domain.DailyForecast{
			{PrecipitationProbability: 80, UVIndex: 5.2},
		},
	}

	summary := WeatherSummary(weather)
	assert.Contains(t, summary, "Temperature: 22°C (feels like 20°C)")
	assert.Contains(t, summary, "Conditions: Overcast")
	assert.Contains(t, summary, "Wind: 12 km/h")
	assert.Contains(t, summary, "Rain probability: 80%")
	assert.Contains(t, summary, "UV index: 5")
}

func TestInsightsGenerate(t *testing.T) {
	var req chatRequest
	srv := completionServer(t, "  Grab an umbrella before heading out.  ", &req)
	defer srv.Close()

	g := NewInsights(NewClient("test-key", srv.URL), "tip-model", true)
	require.True(t, g.Enabled())

	weather := &domain.WeatherData{Current: domain.CurrentWeather{WeatherCode: 61}}
	tip := g.Generate(context.Background(), weather, domain.LanguageLV)
	assert.Equal(t, "Grab an umbrella before heading out.", tip)
	assert.Contains(t, req.Messages[0].Content, "Latvian (latviešu valodā)")
}

func TestInsightsDisabled(t *testing.T) {
	g := NewInsights(NewClient("test-key", ""), "tip-model", false)
	assert.False(t, g.Enabled())
	assert.Empty(t, g.Generate(context.Background(), &domain.WeatherData{}, domain.LanguageEN))

	g = NewInsights(NewClient("", ""), "tip-model", true)
	assert.False(t, g.Enabled())
}
