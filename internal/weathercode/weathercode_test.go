package weathercode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	info := Lookup(0)
	assert.Equal(t, "Clear sky", info.Description)
	assert.Equal(t, SeverityClear, info.Severity)

	info = Lookup(95)
	assert.Equal(t, "Thunderstorm", info.Description)
	assert.Equal(t, SeveritySevere, info.Severity)
}

func TestLookupUnknownCode(t *testing.T) {
	info := Lookup(42)
	assert.Equal(t, "Unknown", info.Description)
	assert.Equal(t, "❓", info.Icon)
	assert.Equal(t, SeverityMild, info.Severity)
}

func TestWindDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{11, "N"},
		{12, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{315, "NW"},
		{337.5, "NNW"},
		{355, "N"},
		{360, "N"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WindDirection(tt.degrees), "degrees=%v", tt.degrees)
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "3:04 PM", FormatTime("2025-06-10T15:04"))
	assert.Equal(t, "12:00 AM", FormatTime("2025-06-10T00:00"))
	// Malformed input passes through untouched.
	assert.Equal(t, "not-a-time", FormatTime("not-a-time"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Tue, Jun 10", FormatDate("2025-06-10"))
	assert.Equal(t, "Wed, Jan 1", FormatDate("2025-01-01"))
}
