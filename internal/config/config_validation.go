// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package config

// bcrypt's supported cost range; values outside it make hashing fail at
// runtime, so they are rejected up front.
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.BcryptCost < minBcryptCost || cfg.Auth.BcryptCost > maxBcryptCost {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.SessionTTL <= 0 || cfg.Auth.SessionCookie == "" {
		return ErrInvalidAuthConfigs
	}

	switch cfg.Storage.Sessions.Backend {
	case SessionBackendMemory, SessionBackendPostgres:
	case SessionBackendSQLite:
		if cfg.Storage.Sessions.SQLitePath == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
