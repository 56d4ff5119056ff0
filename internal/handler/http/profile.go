package http

import (
	"net/http"

	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/utils"
	"github.com/okulikov/go-gatekeeper/models"
)

// profile returns the session payload of the authenticated user.
// The sessionGate middleware guarantees the payload is present in the context.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		log.Error().Msg("no session payload in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Please log in"}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, payload, http.StatusOK)
}

// admin is a role-gated endpoint reachable only by users whose session
// carries the "admin" role.
func (h *Handler) admin(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, "ok", http.StatusOK)
}
