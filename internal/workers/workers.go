package workers

import (
	"context"

	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil workers are skipped.
func NewWorkers(ws ...Worker) *Workers {
	out := &Workers{}
	for _, w := range ws {
		if w != nil {
			out.workers = append(out.workers, w)
		}
	}
	return out
}

// NewClientWorkers builds the workers enabled by cfg.
func NewClientWorkers(cfg config.ClientWorkers, target CalendarRefresher, onRefresh RefreshHook, logger *logger.Logger) (*Workers, error) {
	if !cfg.RefreshEnabled() {
		logger.Debug().Msg("month refresh disabled")
		return NewWorkers(), nil
	}

	refresher, err := NewMonthRefresher(target, cfg.RefreshCron, onRefresh, logger)
	if err != nil {
		return nil, err
	}
	return NewWorkers(refresher), nil
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
