package handler

import (
	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/handler/http"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Auth, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
