// Package config loads service configuration from an optional YAML file with
// environment-variable overrides, .env files included.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config is everything the server needs at startup. The AI features switch
// themselves off when GroqAPIKey is empty.
type Config struct {
	Port            string `yaml:"port"`
	Env             string `yaml:"env"`
	GroqAPIKey      string `yaml:"groq_api_key"`
	GroqBaseURL     string `yaml:"groq_base_url"`
	ParseModel      string `yaml:"parse_model"`
	InsightModel    string `yaml:"insight_model"`
	InsightsEnabled bool   `yaml:"insights_enabled"`
	GeocodingURL    string `yaml:"geocoding_url"`
	ForecastURL     string `yaml:"forecast_url"`
	DefaultLanguage string `yaml:"default_language"`
}

// AIParsingAvailable reports whether the AI query-parse path can run.
func (c *Config) AIParsingAvailable() bool {
	return c.GroqAPIKey != ""
}

// Load builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	cfg := &Config{
		Port:            "8080",
		Env:             "development",
		ParseModel:      "llama-3.1-8b-instant",
		InsightModel:    "llama-3.3-70b-versatile",
		InsightsEnabled: true,
		DefaultLanguage: "en",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not read config file")
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not parse config file")
		}
	}

	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.Env, "GO_ENV")
	overrideString(&cfg.GroqAPIKey, "GROQ_API_KEY")
	overrideString(&cfg.GroqBaseURL, "GROQ_BASE_URL")
	overrideString(&cfg.ParseModel, "GROQ_PARSE_MODEL")
	overrideString(&cfg.InsightModel, "GROQ_INSIGHT_MODEL")
	overrideString(&cfg.GeocodingURL, "GEOCODING_URL")
	overrideString(&cfg.ForecastURL, "FORECAST_URL")
	overrideString(&cfg.DefaultLanguage, "DEFAULT_LANGUAGE")
	if v := os.Getenv("INSIGHTS_ENABLED"); v != "" {
		cfg.InsightsEnabled = v == "true" || v == "1"
	}

	return cfg
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
