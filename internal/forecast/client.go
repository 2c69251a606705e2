// Package forecast fetches 7-day forecast snapshots from the Open-Meteo
// forecast API.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/weatherchat/backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	maxHourly      = 48
)

var (
	currentFields = []string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature",
		"is_day", "wind_speed_10m", "wind_direction_10m", "wind_gusts_10m",
		"precipitation", "rain", "weather_code", "cloud_cover", "pressure_msl",
	}
	hourlyFields = []string{
		"temperature_2m", "relative_humidity_2m", "dew_point_2m",
		"apparent_temperature", "precipitation_probability", "precipitation",
		"rain", "snowfall", "weather_code", "cloud_cover", "visibility",
		"wind_speed_10m", "wind_direction_10m", "wind_gusts_10m",
	}
	dailyFields = []string{
		"weather_code", "temperature_2m_max", "temperature_2m_min",
		"apparent_temperature_max", "apparent_temperature_min", "sunrise",
		"sunset", "daylight_duration", "uv_index_max", "precipitation_sum",
		"precipitation_hours", "precipitation_probability_max",
		"wind_speed_10m_max", "wind_gusts_10m_max", "wind_direction_10m_dominant",
	}
)

// Client fetches forecast data for resolved locations.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates a forecast client. baseURL may be empty to use the public
// Open-Meteo endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
		logger:  log.With().Str("component", "forecast").Logger(),
	}
}

type apiResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Temperature2m       float64 `json:"temperature_2m"`
		RelativeHumidity2m  int     `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		IsDay               int     `json:"is_day"`
		WindSpeed10m        float64 `json:"wind_speed_10m"`
		WindDirection10m    float64 `json:"wind_direction_10m"`
		WindGusts10m        float64 `json:"wind_gusts_10m"`
		Precipitation       float64 `json:"precipitation"`
		Rain                float64 `json:"rain"`
		WeatherCode         int     `json:"weather_code"`
		CloudCover          int     `json:"cloud_cover"`
		PressureMsl         float64 `json:"pressure_msl"`
	} `json:"current"`
	Daily struct {
		Time                        []string  `json:"time"`
		WeatherCode                 []int     `json:"weather_code"`
		Temperature2mMax            []float64 `json:"temperature_2m_max"`
		Temperature2mMin            []float64 `json:"temperature_2m_min"`
		ApparentTemperatureMax      []float64 `json:"apparent_temperature_max"`
		ApparentTemperatureMin      []float64 `json:"apparent_temperature_min"`
		Sunrise                     []string  `json:"sunrise"`
		Sunset                      []string  `json:"sunset"`
		DaylightDuration            []float64 `json:"daylight_duration"`
		UVIndexMax                  []float64 `json:"uv_index_max"`
		PrecipitationSum            []float64 `json:"precipitation_sum"`
		PrecipitationHours          []float64 `json:"precipitation_hours"`
		PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
		WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
		WindGusts10mMax             []float64 `json:"wind_gusts_10m_max"`
		WindDirection10mDominant    []float64 `json:"wind_direction_10m_dominant"`
	} `json:"daily"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		RelativeHumidity2m       []int     `json:"relative_humidity_2m"`
		DewPoint2m               []float64 `json:"dew_point_2m"`
		ApparentTemperature      []float64 `json:"apparent_temperature"`
		PrecipitationProbability []int     `json:"precipitation_probability"`
		Precipitation            []float64 `json:"precipitation"`
		Rain                     []float64 `json:"rain"`
		Snowfall                 []float64 `json:"snowfall"`
		WeatherCode              []int     `json:"weather_code"`
		CloudCover               []int     `json:"cloud_cover"`
		Visibility               []float64 `json:"visibility"`
		WindSpeed10m             []float64 `json:"wind_speed_10m"`
		WindDirection10m         []float64 `json:"wind_direction_10m"`
		WindGusts10m             []float64 `json:"wind_gusts_10m"`
	} `json:"hourly"`
}

// Fetch retrieves the forecast snapshot for a geocoded location. Unlike
// geocoding, a failed fetch is a real error: the caller turns it into an
// api_error message.
func (c *Client) Fetch(ctx context.Context, location *domain.GeoLocation) (*domain.WeatherData, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("forecast: rate limit wait canceled: %w", err)
	}

	tz := location.Timezone
	if tz == "" {
		tz = "auto"
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	params.Set("current", strings.Join(currentFields, ","))
	params.Set("hourly", strings.Join(hourlyFields, ","))
	params.Set("daily", strings.Join(dailyFields, ","))
	params.Set("timezone", tz)
	params.Set("forecast_days", strconv.Itoa(domain.ForecastDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("forecast: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast: unexpected status %d", resp.StatusCode)
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("forecast: failed to decode response: %w", err)
	}

	weather := &domain.WeatherData{
		Location:  location.Name,
		Country:   location.Country,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Timezone:  data.Timezone,
		Current: domain.CurrentWeather{
			Temperature:         data.Current.Temperature2m,
			ApparentTemperature: data.Current.ApparentTemperature,
			Humidity:            data.Current.RelativeHumidity2m,
			WindSpeed:           data.Current.WindSpeed10m,
			WindDirection:       data.Current.WindDirection10m,
			WindGusts:           data.Current.WindGusts10m,
			WeatherCode:         data.Current.WeatherCode,
			Precipitation:       data.Current.Precipitation,
			Rain:                data.Current.Rain,
			CloudCover:          data.Current.CloudCover,
			Pressure:            data.Current.PressureMsl,
			IsDay:               data.Current.IsDay == 1,
		},
	}

	for i, date := range data.Daily.Time {
		weather.Daily = append(weather.Daily, domain.DailyForecast{
			Date:                     date,
			MaxTemp:                  at(data.Daily.Temperature2mMax, i),
			MinTemp:                  at(data.Daily.Temperature2mMin, i),
			ApparentMaxTemp:          at(data.Daily.ApparentTemperatureMax, i),
			ApparentMinTemp:          at(data.Daily.ApparentTemperatureMin, i),
			WeatherCode:              at(data.Daily.WeatherCode, i),
			PrecipitationSum:         at(data.Daily.PrecipitationSum, i),
			PrecipitationProbability: at(data.Daily.PrecipitationProbabilityMax, i),
			PrecipitationHours:       at(data.Daily.PrecipitationHours, i),
			Sunrise:                  at(data.Daily.Sunrise, i),
			Sunset:                   at(data.Daily.Sunset, i),
			DaylightDuration:         at(data.Daily.DaylightDuration, i),
			UVIndex:                  at(data.Daily.UVIndexMax, i),
			WindSpeedMax:             at(data.Daily.WindSpeed10mMax, i),
			WindGustsMax:             at(data.Daily.WindGusts10mMax, i),
			WindDirection:            at(data.Daily.WindDirection10mDominant, i),
		})
	}

	for i, ts := range data.Hourly.Time {
		if i >= maxHourly {
			break
		}
		weather.Hourly = append(weather.Hourly, domain.HourlyForecast{
			Time:                     ts,
			Temperature:              at(data.Hourly.Temperature2m, i),
			ApparentTemperature:      at(data.Hourly.ApparentTemperature, i),
			Humidity:                 at(data.Hourly.RelativeHumidity2m, i),
			DewPoint:                 at(data.Hourly.DewPoint2m, i),
			PrecipitationProbability: at(data.Hourly.PrecipitationProbability, i),
			Precipitation:            at(data.Hourly.Precipitation, i),
			Rain:                     at(data.Hourly.Rain, i),
			Snowfall:                 at(data.Hourly.Snowfall, i),
			WeatherCode:              at(data.Hourly.WeatherCode, i),
			CloudCover:               at(data.Hourly.CloudCover, i),
			Visibility:               at(data.Hourly.Visibility, i),
			WindSpeed:                at(data.Hourly.WindSpeed10m, i),
			WindDirection:            at(data.Hourly.WindDirection10m, i),
			WindGusts:                at(data.Hourly.WindGusts10m, i),
		})
	}

	c.logger.Debug().
		Str("location", weather.Location).
		Int("daily", len(weather.Daily)).
		Int("hourly", len(weather.Hourly)).
		Msg("fetched forecast snapshot")

	return weather, nil
}

// at guards against ragged arrays in a malformed API response instead of
// panicking mid-decode.
func at[T any](s []T, i int) T {
	var zero T
	if i < len(s) {
		return s[i]
	}
	return zero
}
