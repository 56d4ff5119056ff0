// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

// Package adapter provides transport-layer abstractions for communicating with
// the go-gatekeeper server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/okulikov/go-gatekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-gatekeeper server. Implementations are responsible for serialisation,
// session token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Signup or Login.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup creates a new account on the server. On success it stores the
	// session token issued by the server via SetToken.
	Signup(ctx context.Context, credentials models.Credentials) error

	// Login authenticates against the server. On success it stores the
	// session token issued by the server via SetToken.
	Login(ctx context.Context, credentials models.Credentials) error

	// Logout destroys the current session on the server and clears the
	// locally stored token.
	Logout(ctx context.Context) error

	// Profile fetches the session payload of the authenticated user.
	Profile(ctx context.Context) (models.SessionPayload, error)

	// Admin calls the role-gated admin endpoint. Returns ErrForbidden when
	// the session does not carry the admin role.
	Admin(ctx context.Context) error
}
