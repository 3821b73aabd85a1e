// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/rs/zerolog"
)

type clientHistoryService struct {
	journal store.ExportJournal
	ids     IDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientHistoryService(journal store.ExportJournal, ids IDGenerator, logger *logger.Logger) HistoryService {
	return &clientHistoryService{
		journal: journal,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

func (h *clientHistoryService) StartRun(ctx context.Context, dateRange models.DateRange) (context.Context, string, error) {
	runID := h.ids.Generate()

	err := h.journal.StartRun(ctx, models.ExportRun{
		RunID:     runID,
		StartDate: dateRange.StartString(),
		EndDate:   dateRange.EndString(),
		Status:    models.RunStatusRunning,
		StartedAt: h.now(),
	})
	if err != nil {
		return ctx, "", fmt.Errorf("start export run: %w", err)
	}

	runLogger := h.logger.GetChildLogger()
	runLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})
	runLogger.Info().Str("range", dateRange.String()).Msg("export run started")

	return utils.WithRunID(runLogger.WithContext(ctx), runID), runID, nil
}

func (h *clientHistoryService) FinishRun(ctx context.Context, runID string, runErr error) error {
	status := models.RunStatusFinished
	if runErr != nil {
		status = models.RunStatusFailed
	}

	if err := h.journal.FinishRun(ctx, runID, status, runErr); err != nil {
		return fmt.Errorf("finish export run %s: %w", runID, err)
	}

	h.logger.Info().Str("run_id", runID).Str("status", string(status)).Msg("export run finished")
	return nil
}

func (h *clientHistoryService) ListRuns(ctx context.Context, limit int) ([]models.ExportRun, error) {
	runs, err := h.journal.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list export runs: %w", err)
	}
	return runs, nil
}
