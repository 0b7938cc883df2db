package store

import (
	"context"
	"fmt"

	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Sessions persists the current credential across restarts.
	Sessions SessionStore

	// Cache mirrors portfolio snapshots and quotes for offline reads.
	Cache CacheRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the session store at cfg.SessionPath (read once at startup).
//  2. Opens the SQLite cache at cfg.CacheDSN, creating the file if needed.
//  3. Runs pending cache schema migrations.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	sessions, err := NewSessionStore(cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("session store error: %w", err)
	}

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("cache connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("cache migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions: sessions,
		Cache:    NewCacheRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the cache database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
