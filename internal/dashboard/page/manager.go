package page

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peakstock/stockdeck/pkg/logger"
)

// Manager tracks live pages by session ID. A page whose session stays idle
// past the TTL is discarded, mirroring navigation away from the view.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	newPage  func() *Page
	sessions map[string]*session
}

type session struct {
	page     *Page
	lastSeen time.Time
}

// NewManager creates a session manager producing pages from newPage.
func NewManager(ttl time.Duration, newPage func() *Page) *Manager {
	return &Manager{
		ttl:      ttl,
		now:      time.Now,
		newPage:  newPage,
		sessions: make(map[string]*session),
	}
}

// Get returns the page for a session, creating page and session ID as
// needed. The returned ID equals sessionID unless a new session was minted.
func (m *Manager) Get(sessionID string) (*Page, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessionID != "" {
		if s, ok := m.sessions[sessionID]; ok {
			s.lastSeen = m.now()
			return s.page, sessionID
		}
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s := &session{page: m.newPage(), lastSeen: m.now()}
	m.sessions[sessionID] = s

	logger.Logger.Debug().
		Str("session_id", sessionID).
		Int("live_sessions", len(m.sessions)).
		Msg("Dashboard session created")

	return s.page, sessionID
}

// Purge drops idle sessions and returns how many remain.
func (m *Manager) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
	return len(m.sessions)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
