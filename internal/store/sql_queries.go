package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, role, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, role, created_at
    FROM users
    WHERE username = $1;`
)

// sessionQueries builds the session-table SQL for a given placeholder
// dialect: [sq.Dollar] for PostgreSQL, [sq.Question] for SQLite. Keeping the
// builders in one place guarantees both backends stay column-compatible.
type sessionQueries struct {
	builder sq.StatementBuilderType
}

func newSessionQueries(placeholder sq.PlaceholderFormat) sessionQueries {
	return sessionQueries{builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

// upsert replaces any previous entry for the same token.
func (q sessionQueries) upsert(token, username, role string, expiresAt time.Time) (string, []any, error) {
	return q.builder.
		Insert("sessions").
		Columns("token", "username", "role", "expires_at").
		Values(token, username, role, expiresAt).
		Suffix(`ON CONFLICT (token) DO UPDATE
    SET username = excluded.username, role = excluded.role, expires_at = excluded.expires_at`).
		ToSql()
}

// selectLive fetches the session for token only while it is still valid at
// the given instant; expired rows are treated as absent.
func (q sessionQueries) selectLive(token string, now time.Time) (string, []any, error) {
	return q.builder.
		Select("token", "username", "role", "expires_at").
		From("sessions").
		Where(sq.Eq{"token": token}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

func (q sessionQueries) deleteByToken(token string) (string, []any, error) {
	return q.builder.
		Delete("sessions").
		Where(sq.Eq{"token": token}).
		ToSql()
}

func (q sessionQueries) deleteExpired(now time.Time) (string, []any, error) {
	return q.builder.
		Delete("sessions").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
