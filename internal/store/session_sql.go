package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver

	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/models"
)

// sqlSessionStore is a [SessionStore] backed by a relational "sessions"
// table. The same implementation serves both supported dialects; only the
// placeholder format and the connection differ.
type sqlSessionStore struct {
	db      *sql.DB
	queries sessionQueries
	logger  *logger.Logger
}

// NewPostgresSessionStore constructs a [SessionStore] sharing the user
// database connection. The sessions table is created by the migrations.
func NewPostgresSessionStore(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating postgres session store")
	return &sqlSessionStore{
		db:      db.DB,
		queries: newSessionQueries(sq.Dollar),
		logger:  logger,
	}
}

const createSQLiteSessionsTable = `CREATE TABLE IF NOT EXISTS sessions (
    token      TEXT PRIMARY KEY,
    username   TEXT NOT NULL,
    role       TEXT NOT NULL DEFAULT '',
    expires_at TIMESTAMP NOT NULL
);`

// NewSQLiteSessionStore opens (or creates) a SQLite database at path and
// returns a [SessionStore] persisting sessions there. Intended for
// single-node deployments that want sessions to survive restarts without a
// second PostgreSQL table.
func NewSQLiteSessionStore(path string, logger *logger.Logger) (SessionStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite session database: %w", err)
	}

	if _, err := db.Exec(createSQLiteSessionsTable); err != nil {
		return nil, fmt.Errorf("error creating sessions table: %w", err)
	}

	logger.Debug().Str("path", path).Msg("creating sqlite session store")
	return &sqlSessionStore{
		db:      db,
		queries: newSessionQueries(sq.Question),
		logger:  logger,
	}, nil
}

func (s *sqlSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.selectLive(token, time.Now().UTC())
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&session.Token, &session.Payload.Username, &session.Payload.Role, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sqlSessionStore.Get").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (s *sqlSessionStore) Set(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.upsert(
		session.Token,
		session.Payload.Username,
		session.Payload.Role,
		session.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlSessionStore.Set").Msg("error: upsert failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlSessionStore) Destroy(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.deleteByToken(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlSessionStore.Destroy").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.deleteExpired(time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlSessionStore.DeleteExpired").Msg("error: delete failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
