package geocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocationEnglish(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"What's the weather in Tokyo?", "Tokyo"},
		{"weather in New York today", "New York"},
		{"Will it rain in London tomorrow?", "London"},
		{"forecast for Paris", "Paris"},
		{"temperature in Berlin", "Berlin"},
		{"Sydney weather", "Sydney"},
		{"how is the weather in San Francisco?", "San Francisco"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractLocation(tt.query), "query=%q", tt.query)
	}
}

func TestExtractLocationLatvian(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Kāds laiks Rīgā?", "Rīgā"},
		{"kāds laiks ir Liepājā", "Liepājā"},
		{"laika prognoze Jelgavai", "Jelgavai"},
		{"Vai līs Ventspilī?", "Ventspilī"},
		{"Cik būs rīt grādi Rīgā?", "Rīgā"},
		{"parādi laiku Jūrmalā šodien", "Jūrmalā"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractLocation(tt.query), "query=%q", tt.query)
	}
}

func TestExtractLocationTrimsTemporalSuffixes(t *testing.T) {
	assert.Equal(t, "Oslo", ExtractLocation("weather in Oslo today"))
	assert.Equal(t, "Oslo", ExtractLocation("temperature in Oslo this week"))
}

func TestExtractLocationNoMatch(t *testing.T) {
	assert.Empty(t, ExtractLocation("asdkjasd"))
	assert.Empty(t, ExtractLocation("hello there"))
	// A one-character candidate is rejected.
	assert.Empty(t, ExtractLocation("weather in X"))
}

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rīgā", "Riga"},
		{"rīga", "Riga"},
		{"Києві", "Kyiv"},
		{"Москве", "Moscow"},
		{"одессе", "Odesa"},
		{"петербурге", "Saint Petersburg"},
		{"Liepājā", "Liepaja"},
		// Unknown names pass through unchanged.
		{"Tokyo", "Tokyo"},
		{"Springfield", "Springfield"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCity(tt.in), "in=%q", tt.in)
	}
}
