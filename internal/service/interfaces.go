package service

import (
	"context"

	"github.com/okulikov/go-gatekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers the full credential and session lifecycle: account
// creation, login, logout, and resolving an opaque token back into the
// session payload it stands for.
type AuthService interface {
	// Signup creates a new account and immediately opens a session for it.
	Signup(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Login verifies credentials against the stored user record and opens
	// a fresh session on success.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout destroys the session identified by token. Unknown tokens are
	// not an error.
	Logout(ctx context.Context, token string) error

	// Resolve returns the payload behind a live session token, or
	// store.ErrSessionNotFound for missing and expired tokens alike.
	Resolve(ctx context.Context, token string) (models.SessionPayload, error)
}
