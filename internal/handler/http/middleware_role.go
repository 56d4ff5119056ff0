package http

import (
	"net/http"

	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/utils"
	"github.com/okulikov/go-gatekeeper/models"
)

// roleGate returns an HTTP middleware that requires the authenticated
// session to carry the given role. It must be mounted after sessionGate,
// which puts the session payload into the request context.
//
// Requests whose session role does not match are rejected with HTTP 403
// Forbidden and the body {"error": "Not authorized for this content"}.
// A missing payload is rejected with HTTP 401, matching sessionGate.
func (h *Handler) roleGate(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			payload, ok := utils.GetSessionFromContext(r.Context())
			if !ok {
				log.Error().Msg("no session payload in request context")
				utils.WriteJSON(w, models.ErrorResponse{Error: "Please log in"}, http.StatusUnauthorized)
				return
			}

			if payload.Role != role {
				log.Error().
					Str("username", payload.Username).
					Str("required_role", role).
					Msg("session role does not grant access")
				utils.WriteJSON(w, models.ErrorResponse{Error: "Not authorized for this content"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
