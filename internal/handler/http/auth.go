// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/service"
	"github.com/okulikov/go-gatekeeper/internal/store"
	"github.com/okulikov/go-gatekeeper/internal/utils"
	"github.com/okulikov/go-gatekeeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Signup(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already taken")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User already exists"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, "Unknown error", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", session.Payload.Username).Msg("user successfully signed up")

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, "ok", http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrIncorrectPassword):
			log.Err(err).Msg("incorrect password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Incorrect password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, "Unknown error", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", session.Payload.Username).Msg("user successfully logged in")

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, "ok", http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := h.sessionTokenFromRequest(r)
	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		http.Error(w, "Unknown error", http.StatusInternalServerError)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, "ok", http.StatusOK)
}

// setSessionCookie attaches the opaque session token to the response.
// The cookie is HttpOnly so that page scripts never see the token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie instructs the client to drop the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionTokenFromRequest returns the session token from the request cookie,
// or an empty string when the cookie is absent.
func (h *Handler) sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
