package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okulikov/go-gatekeeper/internal/store"
	"github.com/okulikov/go-gatekeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routedAuthService backs the full router with an in-memory session map so
// that the login → gated-route flow can be exercised end to end.
func routedAuthService() *mockAuthService {
	sessions := map[string]models.SessionPayload{
		"admin-token": {Username: "alice", Role: "admin"},
		"user-token":  {Username: "bob"},
	}

	return &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.Session, error) {
			if c.Username == "alice" {
				return stubSession("admin-token", "alice", "admin"), nil
			}
			return models.Session{}, store.ErrUserNotFound
		},
		signupFn: func(_ context.Context, c models.Credentials) (models.Session, error) {
			return stubSession("user-token", c.Username, ""), nil
		},
		resolveFn: func(_ context.Context, token string) (models.SessionPayload, error) {
			payload, ok := sessions[token]
			if !ok {
				return models.SessionPayload{}, store.ErrSessionNotFound
			}
			return payload, nil
		},
	}
}

func TestRoutes_LoginThenProfile(t *testing.T) {
	h := newHandlerWithAuth(t, routedAuthService())
	router := h.Init()

	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "alice", "password": "secret"}`))
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, loginReq)

	require.Equal(t, http.StatusOK, loginRec.Code)
	cookie := sessionCookie(loginRec)
	require.NotNil(t, cookie)

	profileReq := httptest.NewRequest(http.MethodGet, "/profile", nil)
	profileReq.AddCookie(cookie)
	profileRec := httptest.NewRecorder()
	router.ServeHTTP(profileRec, profileReq)

	require.Equal(t, http.StatusOK, profileRec.Code)
	assert.JSONEq(t, `{"username": "alice", "role": "admin"}`, profileRec.Body.String())
}

func TestRoutes_ProfileWithoutSession(t *testing.T) {
	h := newHandlerWithAuth(t, routedAuthService())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Please log in"}`, rec.Body.String())
}

func TestRoutes_AdminRequiresRole(t *testing.T) {
	h := newHandlerWithAuth(t, routedAuthService())
	router := h.Init()

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{"admin role passes", "admin-token", http.StatusOK, `"ok"`},
		{"plain user is rejected", "user-token", http.StatusForbidden, `{"error": "Not authorized for this content"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.AddCookie(&http.Cookie{Name: testCookieName, Value: tt.token})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRoutes_UnsupportedMethodHidesRoute(t *testing.T) {
	h := newHandlerWithAuth(t, routedAuthService())
	router := h.Init()

	// GET on a POST-only route responds 404, not 405.
	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newHandlerWithAuth(t, routedAuthService())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
