package service

import (
	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/crypto"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.SessionStore,
			crypto.NewBcryptHasher(cfg.Auth.BcryptCost),
			cfg.Auth,
			logger,
		),
	}
}
