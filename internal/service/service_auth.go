// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/crypto"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/store"
	"github.com/okulikov/go-gatekeeper/internal/utils"
	"github.com/okulikov/go-gatekeeper/models"
)

// dummyHash is a well-formed bcrypt hash verified when a login names an
// unknown user, so that the request costs roughly the same as a real
// verification. The comparison result is discarded.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of AuthService.
// It verifies credentials with a PasswordHasher, persists accounts through a
// UserRepository, and keeps opaque session tokens in a SessionStore.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionStore maps issued session tokens to their payloads.
	sessionStore store.SessionStore

	// hasher produces and verifies salted password hashes.
	hasher crypto.PasswordHasher

	// tokenGenerator issues fresh opaque session tokens.
	tokenGenerator *utils.TokenGenerator

	// sessionTTL controls how long a newly opened session remains valid.
	sessionTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given stores and
// populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionStore store.SessionStore,
	hasher crypto.PasswordHasher,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		sessionStore:   sessionStore,
		hasher:         hasher,
		tokenGenerator: utils.NewTokenGenerator(),
		sessionTTL:     cfg.SessionTTL,
		logger:         logger,
	}
}

// Signup creates a new user account and opens a session for it.
//
// The password is hashed before anything touches storage; if hashing fails,
// the request aborts with ErrHashingFailure and no user record or session is
// created.
//
// Returns the opened session or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrHashingFailure if the password cannot be hashed.
//   - store.ErrUsernameTaken (wrapped) if the username already exists.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.openSession(ctx, createdUser)
}

// Login authenticates an existing user and opens a fresh session.
//
// When the username is unknown, a fixed dummy hash is verified before
// returning, so that the response time does not reveal whether the account
// exists.
//
// Returns the opened session or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - store.ErrUserNotFound (wrapped) if no such account exists.
//   - ErrIncorrectPassword if the password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_, _ = a.hasher.Verify(credentials.Password, dummyHash)
			log.Error().Str("username", credentials.Username).Msg("login attempt for unknown user")
			return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
		}

		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	matches, err := a.hasher.Verify(credentials.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password verification failed")
		return models.Session{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !matches {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("incorrect password")
		return models.Session{}, ErrIncorrectPassword
	}

	return a.openSession(ctx, foundUser)
}

// Logout destroys the session identified by token.
// Destroying an absent or already expired token is not an error.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	if err := a.sessionStore.Destroy(ctx, token); err != nil {
		log.Err(err).Msg("session destruction failed")
		return fmt.Errorf("session destruction failed: %w", err)
	}

	return nil
}

// Resolve returns the payload behind a live session token.
//
// Missing, expired, and empty tokens all yield store.ErrSessionNotFound so
// that callers need not distinguish the three cases.
func (a *authService) Resolve(ctx context.Context, token string) (models.SessionPayload, error) {
	if token == "" {
		return models.SessionPayload{}, store.ErrSessionNotFound
	}

	session, err := a.sessionStore.Get(ctx, token)
	if err != nil {
		return models.SessionPayload{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return session.Payload, nil
}

// openSession issues a fresh token for user and persists the session.
func (a *authService) openSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	session := models.Session{
		Token: a.tokenGenerator.Generate(),
		Payload: models.SessionPayload{
			Username: user.Username,
			Role:     user.Role,
		},
		ExpiresAt: time.Now().Add(a.sessionTTL),
	}

	if err := a.sessionStore.Set(ctx, session); err != nil {
		log.Err(err).Str("username", user.Username).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}
