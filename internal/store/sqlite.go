package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/migrations"
)

// DB wraps the cache database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if necessary) the SQLite cache database
// at cfg.CacheDSN and verifies the connection with a ping.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if cfg.CacheDSN != ":memory:" {
		if err := createLocalDBFileIfNotExists(cfg.CacheDSN); err != nil {
			log.Err(err).Msg("error creating cache database file")
			return nil, fmt.Errorf("error creating cache database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.CacheDSN)
	if err != nil {
		log.Err(err).Msg("error opening cache database")
		return nil, fmt.Errorf("error opening connection to cache DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error pinging cache database")
		return nil, err
	}
	log.Debug().Str("dsn", cfg.CacheDSN).Msg("connected to cache database")

	return &DB{DB: conn, logger: log}, nil
}

// Migrate applies pending cache schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
