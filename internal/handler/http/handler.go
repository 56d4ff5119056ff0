package http

import (
	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieName is the name of the HTTP cookie carrying the session token.
	cookieName string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		cookieName: cfg.SessionCookie,
		logger:     logger,
	}
}
