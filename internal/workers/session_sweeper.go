// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package workers

import (
	"context"
	"time"

	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/store"
)

// sessionSweeper periodically removes expired sessions from the session
// store. Session stores already refuse expired entries on read; the sweeper
// keeps the store from accumulating dead entries between reads.
type sessionSweeper struct {
	ctx          context.Context
	sessionStore store.SessionStore
	interval     time.Duration
	logger       *logger.Logger
}

func newSessionSweeper(ctx context.Context, sessionStore store.SessionStore, interval time.Duration, logger *logger.Logger) *sessionSweeper {
	return &sessionSweeper{
		ctx:          ctx,
		sessionStore: sessionStore,
		interval:     interval,
		logger:       logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately. The loop stops when the worker's context is cancelled.
func (s *sessionSweeper) Run() {
	go s.loop()
}

func (s *sessionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *sessionSweeper) sweep() {
	deleted, err := s.sessionStore.DeleteExpired(s.ctx)
	if err != nil {
		s.logger.Err(err).Msg("expired session sweep failed")
		return
	}

	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions removed")
	}
}
