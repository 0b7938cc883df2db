package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fincopilot/go-copilot-client/models"
)

// fileSessionStore persists the session as a JSON file. The file is read
// once at construction; afterwards the in-memory copy is authoritative for
// this process. Writes go to disk synchronously so the session survives a
// restart, but concurrent processes each keep their own copy (no cross-tab
// synchronisation, matching the browser storage this replaces).
type fileSessionStore struct {
	path string

	mu      sync.RWMutex
	session *models.Session
}

// NewSessionStore returns a [SessionStore] backed by the JSON file at path.
// The special path ":memory:" selects a non-persistent in-memory store.
func NewSessionStore(path string) (SessionStore, error) {
	if path == "" || path == ":memory:" {
		return NewMemorySessionStore(), nil
	}

	s := &fileSessionStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSessionStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		// a corrupt session file means "not logged in", not a fatal error
		return nil
	}
	if session.Token != "" {
		s.session = &session
	}
	return nil
}

func (s *fileSessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &session
	return s.persist(&session)
}

func (s *fileSessionStore) Load() (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.Session{}, ErrSessionNotFound
	}
	return *s.session, nil
}

func (s *fileSessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return ""
	}
	return s.session.Token
}

func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *fileSessionStore) persist(session *models.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// the file carries a bearer token, keep it owner-only
	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
