package store

import (
	"context"

	"github.com/okulikov/go-gatekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
// Records are immutable once created; there are no update or delete
// operations.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields populated. A username collision yields
	// [ErrUsernameTaken]; existing records are never overwritten.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the record matching the exact,
	// case-sensitive username, or [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionStore maps opaque session tokens to their payloads. All operations
// are single-key; implementations must be safe for concurrent use.
type SessionStore interface {
	// Get returns the session for token. Missing and expired sessions both
	// yield [ErrSessionNotFound].
	Get(ctx context.Context, token string) (models.Session, error)

	// Set stores session keyed by its token, replacing any previous entry.
	Set(ctx context.Context, session models.Session) error

	// Destroy removes the session for token. Destroying an absent token is
	// not an error.
	Destroy(ctx context.Context, token string) error

	// DeleteExpired removes all sessions past their expiry and returns the
	// number of entries removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
