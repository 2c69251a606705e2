// Package chat owns the conversation state machine: one Session per UI
// session, holding the message history, the last resolved location and the
// current language, and orchestrating the collaborators that serve a turn.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/weatherchat/backend/internal/domain"
	"github.com/weatherchat/backend/internal/geocode"
	"github.com/weatherchat/backend/internal/i18n"
	"github.com/weatherchat/backend/internal/render"
)

// State is the session's turn-processing phase. The delivery layer uses it
// for single-flight admission and to drive a typing/thinking indicator.
type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateThinking State = "thinking"
)

// ErrBusy is returned when a query arrives while another turn is in flight.
// Admission control is the caller's job; the session just refuses the
// overlap.
var ErrBusy = errors.New("chat: session is processing another query")

// Geocoder resolves place names; nil result means not found (failures are
// swallowed by the implementation).
type Geocoder interface {
	Geocode(ctx context.Context, query string) *domain.GeoLocation
}

// ForecastProvider fetches a forecast snapshot for a resolved location.
type ForecastProvider interface {
	Fetch(ctx context.Context, location *domain.GeoLocation) (*domain.WeatherData, error)
}

// QueryParser is the AI parsing collaborator. Parse returns nil whenever the
// deterministic fallback should take over.
type QueryParser interface {
	Configured() bool
	Parse(ctx context.Context, query string) *domain.ParsedQuery
}

// InsightGenerator is the AI tip collaborator. Empty string means no tip.
type InsightGenerator interface {
	Enabled() bool
	Generate(ctx context.Context, weather *domain.WeatherData, lang domain.Language) string
}

// Session is one conversation. All mutable state (history, last location,
// language) lives here and is guarded by mu; external I/O happens outside
// the lock.
type Session struct {
	ID string

	geocoder  Geocoder
	forecasts ForecastProvider
	parser    QueryParser
	insights  InsightGenerator
	logger    zerolog.Logger

	mu           sync.Mutex
	messages     []*domain.Message
	lastLocation *domain.GeoLocation
	language     domain.Language
	state        State
	thinkingMode bool
	// epoch guards against a turn that was in flight when the conversation
	// was cleared appending its stale result afterwards.
	epoch uint64
}

// NewSession creates a session seeded with a localized welcome message.
func NewSession(lang domain.Language, thinkingMode bool, geocoder Geocoder, forecasts ForecastProvider, parser QueryParser, insights InsightGenerator) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:           id,
		geocoder:     geocoder,
		forecasts:    forecasts,
		parser:       parser,
		insights:     insights,
		logger:       log.With().Str("component", "chat").Str("session", id).Logger(),
		language:     lang,
		state:        StateIdle,
		thinkingMode: thinkingMode,
	}
	s.messages = append(s.messages, newMessage(domain.RoleAssistant, i18n.Get(lang).WelcomeMessage, nil, &domain.MessageMeta{Type: domain.MetaWelcome}))
	return s
}

func newMessage(role domain.Role, content string, weather *domain.WeatherData, meta *domain.MessageMeta) *domain.Message {
	return &domain.Message{
		ID:          uuid.NewString(),
		Role:        role,
		Content:     content,
		Timestamp:   time.Now(),
		WeatherData: weather,
		Meta:        meta,
	}
}

// State reports the session's current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Language reports the session's current language.
func (s *Session) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Messages returns a snapshot of the conversation history.
func (s *Session) Messages() []*domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// ProcessQuery runs one complete turn: parse, resolve, fetch, enrich, render,
// append. It returns the messages the turn appended, or ErrBusy when another
// turn is still in flight. Every other failure mode is recovered into a
// localized error message, never an error return.
func (s *Session) ProcessQuery(ctx context.Context, query string) ([]*domain.Message, error) {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.state = StateLoading
	epoch := s.epoch
	lang := s.language
	lastLocation := s.lastLocation
	userMsg := newMessage(domain.RoleUser, query, nil, nil)
	s.messages = append(s.messages, userMsg)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
	}()

	// Best-effort AI parse; nil means the regex fallback carries the turn.
	var parsed *domain.ParsedQuery
	if s.parser != nil && s.parser.Configured() {
		parsed = s.parser.Parse(ctx, query)
	}

	locationQuery := ""
	if parsed != nil && parsed.Location != "" {
		locationQuery = parsed.Location
	} else {
		locationQuery = geocode.ExtractLocation(query)
	}

	var location *domain.GeoLocation
	if locationQuery != "" {
		location = s.geocoder.Geocode(ctx, locationQuery)
	} else if lastLocation != nil {
		location = lastLocation
	}

	if location == nil {
		kind := domain.ErrNoLocation
		if locationQuery != "" {
			kind = domain.ErrLocationNotFound
		}
		errMsg := newMessage(domain.RoleAssistant, render.ErrorResponse(kind, lang), nil,
			&domain.MessageMeta{Type: domain.MetaError, ErrorType: kind})
		if !s.append(epoch, errMsg) {
			return nil, nil
		}
		return []*domain.Message{userMsg, errMsg}, nil
	}

	// Persist the location before fetching so a failed fetch still leaves it
	// available for the next turn.
	s.mu.Lock()
	s.lastLocation = location
	s.mu.Unlock()

	weather, err := s.forecasts.Fetch(ctx, location)
	if err != nil {
		s.logger.Warn().Err(err).Str("location", location.Name).Msg("forecast fetch failed")
		errMsg := newMessage(domain.RoleAssistant, render.ErrorResponse(domain.ErrAPIError, lang), nil,
			&domain.MessageMeta{Type: domain.MetaError, ErrorType: domain.ErrAPIError})
		if !s.append(epoch, errMsg) {
			return nil, nil
		}
		return []*domain.Message{userMsg, errMsg}, nil
	}

	var insight string
	if s.insights != nil && s.insights.Enabled() && s.thinkingModeOn() {
		s.setState(StateThinking)
		insight = s.insights.Generate(ctx, weather, lang)
		s.setState(StateLoading)
	}

	meta := &domain.MessageMeta{Type: domain.MetaWeather, Query: query}
	if parsed != nil {
		meta.AIIntent = parsed.Intent
		meta.AITimeframe = parsed.Timeframe
		meta.AISpecificDate = parsed.SpecificDate
	}

	content := render.WeatherResponse(query, weather, meta.AIIntent, meta.AITimeframe, meta.AISpecificDate, lang)
	reply := newMessage(domain.RoleAssistant, content, weather, meta)
	reply.Insight = insight

	if !s.append(epoch, reply) {
		return nil, nil
	}
	return []*domain.Message{userMsg, reply}, nil
}

// append adds a message to the history unless the conversation was cleared
// after the turn started. Reports whether the message was kept.
func (s *Session) append(epoch uint64, msg *domain.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		s.logger.Debug().Str("message", msg.ID).Msg("discarding stale turn completion")
		return false
	}
	s.messages = append(s.messages, msg)
	return true
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Session) thinkingModeOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thinkingMode
}

// SetThinkingMode toggles the tip-generation phase for subsequent turns.
func (s *Session) SetThinkingMode(on bool) {
	s.mu.Lock()
	s.thinkingMode = on
	s.mu.Unlock()
}

// SetLanguage switches the session language and regenerates every rendered
// assistant message from its stored metadata and snapshot. Nothing is
// re-fetched. Messages that already carry an insight get it regenerated in
// the new language, all calls issued concurrently and joined positionally.
func (s *Session) SetLanguage(ctx context.Context, lang domain.Language) []*domain.Message {
	type insightTarget struct {
		msg     *domain.Message
		weather *domain.WeatherData
	}

	s.mu.Lock()
	s.language = lang
	epoch := s.epoch
	var targets []insightTarget
	for _, m := range s.messages {
		if m.Role != domain.RoleAssistant || m.Meta == nil {
			continue
		}
		m.Content = renderFromMeta(m, lang)
		if m.Insight != "" && s.insights != nil && s.insights.Enabled() {
			targets = append(targets, insightTarget{msg: m, weather: m.WeatherData})
		}
	}
	s.mu.Unlock()

	if len(targets) > 0 {
		results := make([]string, len(targets))
		g, gctx := errgroup.WithContext(ctx)
		for i, t := range targets {
			i, t := i, t
			g.Go(func() error {
				results[i] = s.insights.Generate(gctx, t.weather, lang)
				return nil
			})
		}
		_ = g.Wait()

		s.mu.Lock()
		if s.epoch == epoch {
			for i, t := range targets {
				if results[i] != "" {
					t.msg.Insight = results[i]
				}
			}
		}
		s.mu.Unlock()
	}

	return s.Messages()
}

// renderFromMeta regenerates a message's content from its tagged metadata.
func renderFromMeta(m *domain.Message, lang domain.Language) string {
	switch m.Meta.Type {
	case domain.MetaWelcome:
		return i18n.Get(lang).WelcomeMessage
	case domain.MetaCleared:
		return i18n.Get(lang).ChatCleared
	case domain.MetaError:
		return render.ErrorResponse(m.Meta.ErrorType, lang)
	case domain.MetaWeather:
		return render.WeatherResponse(m.Meta.Query, m.WeatherData, m.Meta.AIIntent, m.Meta.AITimeframe, m.Meta.AISpecificDate, lang)
	default:
		return m.Content
	}
}

// Clear resets the conversation to a single localized "cleared" message and
// drops the remembered location. In-flight turns from before the clear are
// discarded when they complete.
func (s *Session) Clear() []*domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.lastLocation = nil
	s.messages = []*domain.Message{
		newMessage(domain.RoleAssistant, i18n.Get(s.language).ChatCleared, nil, &domain.MessageMeta{Type: domain.MetaCleared}),
	}
	out := make([]*domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// LastLocation returns the single-slot remembered location, if any.
func (s *Session) LastLocation() *domain.GeoLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLocation
}
