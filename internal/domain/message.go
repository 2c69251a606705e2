package domain

import "time"

// Role marks who produced a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MetaType tags the variant of a message's metadata.
type MetaType string

const (
	MetaWelcome MetaType = "welcome"
	MetaCleared MetaType = "cleared"
	MetaError   MetaType = "error"
	MetaWeather MetaType = "weather"
)

// ErrorKind names the user-facing error conditions a turn can end in.
type ErrorKind string

const (
	ErrLocationNotFound ErrorKind = "location_not_found"
	ErrNoLocation       ErrorKind = "no_location"
	ErrAPIError         ErrorKind = "api_error"
)

// MessageMeta records everything needed to regenerate a rendered assistant
// message in another language without re-fetching anything. Exactly one
// variant applies, selected by Type: welcome and cleared carry no extra
// fields, error carries ErrorType, weather carries the original query plus
// whatever the AI parser extracted for the turn.
type MessageMeta struct {
	Type           MetaType  `json:"type"`
	ErrorType      ErrorKind `json:"error_type,omitempty"`
	Query          string    `json:"query,omitempty"`
	AIIntent       Intent    `json:"ai_intent,omitempty"`
	AITimeframe    Timeframe `json:"ai_timeframe,omitempty"`
	AISpecificDate string    `json:"ai_specific_date,omitempty"`
}

// Message is one conversation turn entry. Content and Insight are regenerated
// in place on language change; every other field is written once.
type Message struct {
	ID          string       `json:"id"`
	Role        Role         `json:"role"`
	Content     string       `json:"content"`
	Timestamp   time.Time    `json:"timestamp"`
	WeatherData *WeatherData `json:"weather_data,omitempty"`
	Insight     string       `json:"insight,omitempty"`
	Meta        *MessageMeta `json:"meta,omitempty"`
}
