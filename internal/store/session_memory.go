package store

import (
	"sync"

	"github.com/fincopilot/go-copilot-client/models"
)

// memorySessionStore keeps the session in memory only. Used by tests and by
// the ":memory:" session path.
type memorySessionStore struct {
	mu      sync.RWMutex
	session *models.Session
}

// NewMemorySessionStore returns a non-persistent [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

func (s *memorySessionStore) Load() (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, ErrSessionNotFound
	}
	return *s.session, nil
}

func (s *memorySessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

func (s *memorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
