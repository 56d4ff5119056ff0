package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okulikov/go-gatekeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Success(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := httptest.NewRecorder()
	h.profile(rec, requestWithPayload(models.SessionPayload{Username: "alice", Role: "admin"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username": "alice", "role": "admin"}`, rec.Body.String())
}

func TestProfile_RoleOmittedWhenEmpty(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := httptest.NewRecorder()
	h.profile(rec, requestWithPayload(models.SessionPayload{Username: "bob"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username": "bob"}`, rec.Body.String())
}

func TestProfile_NoPayloadInContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	h.profile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Please log in"}`, rec.Body.String())
}

func TestAdmin_Success(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := httptest.NewRecorder()
	h.admin(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"ok"`, rec.Body.String())
}
