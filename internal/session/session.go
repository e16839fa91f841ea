// Package session holds per-login server-side state. Each successful login
// creates one Session; the API layer finds it again through the jti claim of
// the bearer token. Sessions live in process memory only and are not shared
// across instances.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Exchange struct {
	Message  string    `json:"message"`
	Response string    `json:"response"`
	At       time.Time `json:"at"`
}

type Session struct {
	ID          string
	Username    string
	DisplayName string
	CreatedAt   time.Time

	mu         sync.Mutex
	transcript []Exchange
}

// Append records one completed exchange in the session's cached transcript.
func (s *Session) Append(message, response string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, Exchange{Message: message, Response: response, At: time.Now()})
}

// Transcript returns a copy of the cached exchanges, oldest first.
func (s *Session) Transcript() []Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Exchange, len(s.transcript))
	copy(out, s.transcript)
	return out
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create(username, displayName string) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns nil when the session does not exist (e.g. after a restart).
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// DeleteByUsername drops every session belonging to the user. Used when an
// account is deleted.
func (m *Manager) DeleteByUsername(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.Username == username {
			delete(m.sessions, id)
		}
	}
}
