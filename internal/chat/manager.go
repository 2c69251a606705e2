package chat

import (
	"sync"

	"github.com/weatherchat/backend/internal/domain"
)

// Manager is the in-memory session registry. Sessions live for the process
// lifetime only; there is deliberately no persistence behind this.
type Manager struct {
	geocoder  Geocoder
	forecasts ForecastProvider
	parser    QueryParser
	insights  InsightGenerator

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a registry wiring every new session to the given
// collaborators.
func NewManager(geocoder Geocoder, forecasts ForecastProvider, parser QueryParser, insights InsightGenerator) *Manager {
	return &Manager{
		geocoder:  geocoder,
		forecasts: forecasts,
		parser:    parser,
		insights:  insights,
		sessions:  make(map[string]*Session),
	}
}

// Create starts a new conversation session.
func (m *Manager) Create(lang domain.Language, thinkingMode bool) *Session {
	s := NewSession(lang, thinkingMode, m.geocoder, m.forecasts, m.parser, m.insights)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Count reports how many sessions are registered.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
