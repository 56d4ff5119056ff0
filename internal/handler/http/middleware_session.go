package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/store"
	"github.com/okulikov/go-gatekeeper/internal/utils"
	"github.com/okulikov/go-gatekeeper/models"
)

// sessionGate is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, resolves the opaque token via
// [service.AuthService.Resolve], and — on success — stores the session
// payload in the request context under [utils.SessionCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and the body
// {"error": "Please log in"} in the following cases:
//   - The session cookie is absent.
//   - The token does not resolve to a live session (unknown or expired).
//
// A Resolve failure that is not [store.ErrSessionNotFound] (e.g. the session
// store is unreachable) is not an authentication verdict and is rejected with
// HTTP 500 instead.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) sessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := h.sessionTokenFromRequest(r)
		if token == "" {
			log.Error().Msg("request without session cookie")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Please log in"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		payload, err := h.services.AuthService.Resolve(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				log.Err(err).Msg("session token did not resolve")
				utils.WriteJSON(w, models.ErrorResponse{Error: "Please log in"}, http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("unexpected error occurred during session resolution")
			http.Error(w, "Unknown error", http.StatusInternalServerError)
			return
		}

		// Store the session payload in the context so that downstream
		// handlers can retrieve it without re-resolving the token.
		ctx = context.WithValue(ctx, utils.SessionCtxKey, payload)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
