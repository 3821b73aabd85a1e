// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add appends worker to the chain.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run executes the workers in registration order and stops at the first
// error.
func (w *Workers) Run(ctx context.Context) error {
	for _, worker := range w.workers {
		if w.logger != nil {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
		}

		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", worker.Name(), err)
		}

		if w.logger != nil {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker finished")
		}
	}
	return nil
}
