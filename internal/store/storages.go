package store

import (
	"context"
	"fmt"

	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/logger"
)

// Storages aggregates every persistence capability the services depend on.
type Storages struct {
	UserRepository UserRepository
	SessionStore   SessionStore
}

// NewStorages connects to PostgreSQL, applies migrations, and wires the
// session store backend selected in cfg.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	sessions, err := newSessionStore(cfg.Sessions, db, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		SessionStore:   sessions,
	}, nil
}

func newSessionStore(cfg config.Sessions, db *DB, log *logger.Logger) (SessionStore, error) {
	switch cfg.Backend {
	case config.SessionBackendMemory:
		return NewMemorySessionStore(), nil
	case config.SessionBackendSQLite:
		return NewSQLiteSessionStore(cfg.SQLitePath, log)
	case config.SessionBackendPostgres:
		return NewPostgresSessionStore(db, log), nil
	default:
		return nil, fmt.Errorf("unknown session store backend: %q", cfg.Backend)
	}
}
