// Package geocode resolves free-text place names to coordinates using the
// Open-Meteo geocoding API, including the deterministic regex fallback for
// pulling a place candidate out of a raw query.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/weatherchat/backend/internal/domain"
)

const defaultBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// Client talks to the geocoding API. Lookup failures are swallowed and
// reported as "not found": the conversation layer treats geocoding as
// best-effort.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates a geocoding client. baseURL may be empty to use the
// public Open-Meteo endpoint.
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
		logger:  log.With().Str("component", "geocode").Logger(),
	}
}

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Geocode resolves a place name to a location. The first result wins. It
// returns nil on no results and on transport or decode failure; those are
// logged, never propagated.
func (c *Client) Geocode(ctx context.Context, query string) *domain.GeoLocation {
	normalized := NormalizeCity(query)

	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("rate limit wait canceled")
		return nil
	}

	reqURL := fmt.Sprintf("%s?name=%s&count=1&language=en&format=json", c.baseURL, url.QueryEscape(normalized))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to create geocoding request")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("query", normalized).Msg("geocoding request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("query", normalized).Msg("geocoding returned non-OK status")
		return nil
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Warn().Err(err).Msg("failed to decode geocoding response")
		return nil
	}

	if len(data.Results) == 0 {
		c.logger.Debug().Str("query", normalized).Msg("no geocoding results")
		return nil
	}

	r := data.Results[0]
	loc := &domain.GeoLocation{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Country:   r.Country,
		Admin1:    r.Admin1,
		Timezone:  r.Timezone,
	}
	if loc.Timezone == "" {
		loc.Timezone = "auto"
	}
	return loc
}
