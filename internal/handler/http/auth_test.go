// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/service"
	"github.com/okulikov/go-gatekeeper/internal/store"
	"github.com/okulikov/go-gatekeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn  func(ctx context.Context, credentials models.Credentials) (models.Session, error)
	loginFn   func(ctx context.Context, credentials models.Credentials) (models.Session, error)
	logoutFn  func(ctx context.Context, token string) error
	resolveFn func(ctx context.Context, token string) (models.SessionPayload, error)
}

func (m *mockAuthService) Signup(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return m.signupFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

func (m *mockAuthService) Resolve(ctx context.Context, token string) (models.SessionPayload, error) {
	return m.resolveFn(ctx, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCookieName = "gk_session"

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, config.Auth{SessionCookie: testCookieName}, logger.Nop())
}

// credentialsBody serialises models.Credentials to a JSON request body string.
func credentialsBody(t *testing.T, c models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	return string(b)
}

// stubSession returns a live session for the given username and role.
func stubSession(token, username, role string) models.Session {
	return models.Session{
		Token:     token,
		Payload:   models.SessionPayload{Username: username, Role: role},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// sessionCookie extracts the session cookie from a recorded response,
// or nil when it was not set.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

// validCredentials is a convenience fixture used across multiple tests.
var validCredentials = models.Credentials{
	Username: "alice",
	Password: "super-secret",
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

// TestSignup_Success verifies that a valid signup request results in 200 OK,
// the body "ok", and an HttpOnly session cookie carrying the issued token.
func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, c models.Credentials) (models.Session, error) {
			return stubSession("token-123", c.Username, ""), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"ok"`, rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "token-123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.Credentials) (models.Session, error) {
			return models.Session{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "User already exists"}`, rec.Body.String())
	assert.Nil(t, sessionCookie(rec))
}

func TestSignup_HashingFailure(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.Credentials) (models.Session, error) {
			return models.Session{}, service.ErrHashingFailure
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unknown error\n", rec.Body.String())
	assert.Nil(t, sessionCookie(rec))
}

func TestSignup_EmptyCredentials(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.Credentials) (models.Session, error) {
			return models.Session{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"username": "", "password": ""}`))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.Session, error) {
			return stubSession("token-456", c.Username, "admin"), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"ok"`, rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "token-456", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Session, error) {
			return models.Session{}, store.ErrUserNotFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_IncorrectPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Session, error) {
			return models.Session{}, service.ErrIncorrectPassword
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Incorrect password"}`, rec.Body.String())
}

func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Session, error) {
			return models.Session{}, errors.New("store unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unknown error\n", rec.Body.String())
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	var destroyedToken string
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, token string) error {
			destroyedToken = token
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-789"})
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"ok"`, rec.Body.String())
	assert.Equal(t, "token-789", destroyedToken)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogout_NoCookie(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, token string) error {
			assert.Empty(t, token)
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"ok"`, rec.Body.String())
}

func TestLogout_StoreError(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, _ string) error {
			return errors.New("store unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-789"})
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
