package forecast

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherchat/backend/internal/domain"
)

func riga() *domain.GeoLocation {
	return &domain.GeoLocation{
		Name:      "Riga",
		Country:   "Latvia",
		Latitude:  56.946,
		Longitude: 24.106,
		Timezone:  "Europe/Riga",
	}
}

func fixtureJSON(hours int) string {
	times := make([]string, hours)
	temps := make([]string, hours)
	for i := range times {
		times[i] = fmt.Sprintf("%q", fmt.Sprintf("2025-06-10T%02d:00", i%24))
		temps[i] = "20"
	}
	return fmt.Sprintf(`{
		"timezone": "Europe/Riga",
		"current": {
			"temperature_2m": 21.6, "relative_humidity_2m": 55,
			"apparent_temperature": 20.4, "is_day": 1,
			"wind_speed_10m": 12.3, "wind_direction_10m": 180,
			"wind_gusts_10m": 25.1, "precipitation": 0, "rain": 0,
			"weather_code": 3, "cloud_cover": 60, "pressure_msl": 1013.2
		},
		"daily": {
			"time": ["2025-06-10", "2025-06-11"],
			"weather_code": [3, 61],
			"temperature_2m_max": [22.4, 18.1],
			"temperature_2m_min": [12.9, 11.2],
			"apparent_temperature_max": [21.0, 16.5],
			"apparent_temperature_min": [11.5, 10.0],
			"sunrise": ["2025-06-10T04:31", "2025-06-11T04:30"],
			"sunset": ["2025-06-10T22:18", "2025-06-11T22:19"],
			"daylight_duration": [64020, 64140],
			"uv_index_max": [5.2, 3.1],
			"precipitation_sum": [0, 4.2],
			"precipitation_hours": [0, 6],
			"precipitation_probability_max": [10, 80],
			"wind_speed_10m_max": [15.0, 22.3],
			"wind_gusts_10m_max": [30.1, 44.8],
			"wind_direction_10m_dominant": [190, 270]
		},
		"hourly": {
			"time": [%s],
			"temperature_2m": [%s]
		}
	}`, strings.Join(times, ","), strings.Join(temps, ","))
}

func TestFetchMapsResponse(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixtureJSON(24)))
	}))
	defer srv.Close()

	weather, err := NewClient(srv.URL).Fetch(context.Background(), riga())
	require.NoError(t, err)

	assert.Contains(t, query, "forecast_days=7")
	assert.Contains(t, query, "timezone=Europe%2FRiga")

	assert.Equal(t, "Riga", weather.Location)
	assert.Equal(t, "Latvia", weather.Country)
	assert.Equal(t, "Europe/Riga", weather.Timezone)

	assert.InDelta(t, 21.6, weather.Current.Temperature, 0.001)
	assert.Equal(t, 55, weather.Current.Humidity)
	assert.Equal(t, 3, weather.Current.WeatherCode)
	assert.True(t, weather.Current.IsDay)

	require.Len(t, weather.Daily, 2)
	assert.Equal(t, "2025-06-10", weather.Daily[0].Date)
	assert.InDelta(t, 22.4, weather.Daily[0].MaxTemp, 0.001)
	assert.Equal(t, 80, weather.Daily[1].PrecipitationProbability)
	assert.Equal(t, "2025-06-11T04:30", weather.Daily[1].Sunrise)

	require.Len(t, weather.Hourly, 24)
	assert.Equal(t, "2025-06-10T00:00", weather.Hourly[0].Time)
	assert.InDelta(t, 20, weather.Hourly[0].Temperature, 0.001)
}

func TestFetchCapsHourly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixtureJSON(7 * 24)))
	}))
	defer srv.Close()

	weather, err := NewClient(srv.URL).Fetch(context.Background(), riga())
	require.NoError(t, err)
	assert.Len(t, weather.Hourly, 48)
}

func TestFetchToleratesRaggedArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"timezone": "UTC",
			"daily": {"time": ["2025-06-10", "2025-06-11"], "temperature_2m_max": [20]}
		}`))
	}))
	defer srv.Close()

	weather, err := NewClient(srv.URL).Fetch(context.Background(), riga())
	require.NoError(t, err)
	require.Len(t, weather.Daily, 2)
	assert.InDelta(t, 20, weather.Daily[0].MaxTemp, 0.001)
	assert.Zero(t, weather.Daily[1].MaxTemp)
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background(), riga())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}
