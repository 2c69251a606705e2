package domain

// Intent is the topical category of weather information a query asks for.
type Intent string

const (
	IntentCurrentWeather Intent = "current_weather"
	IntentTemperature    Intent = "temperature"
	IntentForecast       Intent = "forecast"
	IntentRain           Intent = "rain"
	IntentWind           Intent = "wind"
	IntentHumidity       Intent = "humidity"
	IntentUV             Intent = "uv"
	IntentSunriseSunset  Intent = "sunrise_sunset"
	IntentTomorrow       Intent = "tomorrow"
	IntentWeek           Intent = "week"
	IntentHourly         Intent = "hourly"
	IntentGeneral        Intent = "general"
)

// Timeframe is a coarse relative time selector extracted from a query.
type Timeframe string

const (
	TimeframeNow              Timeframe = "now"
	TimeframeToday            Timeframe = "today"
	TimeframeTomorrow         Timeframe = "tomorrow"
	TimeframeDayAfterTomorrow Timeframe = "day_after_tomorrow"
	TimeframeWeek             Timeframe = "week"
	TimeframeHourly           Timeframe = "hourly"
)

// ParsedQuery is the structured result of the AI query parser. A zero-value
// field means the parser did not extract that dimension; the deterministic
// regex path fills the gaps.
type ParsedQuery struct {
	Location     string    `json:"location,omitempty"`
	Intent       Intent    `json:"intent,omitempty"`
	Timeframe    Timeframe `json:"timeframe,omitempty"`
	SpecificDate string    `json:"specificDate,omitempty"` // ISO date, YYYY-MM-DD
}
