package domain

// GeoLocation is a geocoded place. Immutable once resolved; the chat session
// keeps at most one of these as the "last resolved location".
type GeoLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
	Timezone  string  `json:"timezone"`
}

// WeatherData is the full forecast snapshot fetched for one turn. It is never
// mutated after the fetch; rendered messages reference it for later
// re-rendering on language change.
type WeatherData struct {
	Location  string           `json:"location"`
	Country   string           `json:"country"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Timezone  string           `json:"timezone"`
	Current   CurrentWeather   `json:"current"`
	Daily     []DailyForecast  `json:"daily"`
	Hourly    []HourlyForecast `json:"hourly"`
}

// CurrentWeather holds the current conditions block of a snapshot.
type CurrentWeather struct {
	Temperature         float64 `json:"temperature"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	Humidity            int     `json:"humidity"`
	WindSpeed           float64 `json:"wind_speed"`
	WindDirection       float64 `json:"wind_direction"`
	WindGusts           float64 `json:"wind_gusts"`
	WeatherCode         int     `json:"weather_code"`
	Precipitation       float64 `json:"precipitation"`
	Rain                float64 `json:"rain"`
	CloudCover          int     `json:"cloud_cover"`
	Pressure            float64 `json:"pressure"`
	IsDay               bool    `json:"is_day"`
}

// DailyForecast is one entry of the 7-day daily forecast. Index 0 is the day
// of the fetch in the location's local timezone.
type DailyForecast struct {
	Date                     string  `json:"date"`
	MaxTemp                  float64 `json:"max_temp"`
	MinTemp                  float64 `json:"min_temp"`
	ApparentMaxTemp          float64 `json:"apparent_max_temp"`
	ApparentMinTemp          float64 `json:"apparent_min_temp"`
	WeatherCode              int     `json:"weather_code"`
	PrecipitationSum         float64 `json:"precipitation_sum"`
	PrecipitationProbability int     `json:"precipitation_probability"`
	PrecipitationHours       float64 `json:"precipitation_hours"`
	Sunrise                  string  `json:"sunrise"`
	Sunset                   string  `json:"sunset"`
	DaylightDuration         float64 `json:"daylight_duration"`
	UVIndex                  float64 `json:"uv_index"`
	WindSpeedMax             float64 `json:"wind_speed_max"`
	WindGustsMax             float64 `json:"wind_gusts_max"`
	WindDirection            float64 `json:"wind_direction"`
}

// HourlyForecast is one entry of the hourly forecast, capped at 48 entries
// with index 0 being the current hour.
type HourlyForecast struct {
	Time                     string  `json:"time"`
	Temperature              float64 `json:"temperature"`
	ApparentTemperature      float64 `json:"apparent_temperature"`
	Humidity                 int     `json:"humidity"`
	DewPoint                 float64 `json:"dew_point"`
	PrecipitationProbability int     `json:"precipitation_probability"`
	Precipitation            float64 `json:"precipitation"`
	Rain                     float64 `json:"rain"`
	Snowfall                 float64 `json:"snowfall"`
	WeatherCode              int     `json:"weather_code"`
	CloudCover               int     `json:"cloud_cover"`
	Visibility               float64 `json:"visibility"`
	WindSpeed                float64 `json:"wind_speed"`
	WindDirection            float64 `json:"wind_direction"`
	WindGusts                float64 `json:"wind_gusts"`
}

// ForecastDays is the horizon of the daily forecast: offsets 0 through 6.
const ForecastDays = 7
