package workers

import (
	"context"

	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers. The returned
// aggregate currently contains the expired-session sweeper; workers stop
// when ctx is cancelled.
func NewWorkers(ctx context.Context, storages store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionSweeper(ctx, storages.SessionStore, cfg.SweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
