// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/service"
	"github.com/MKhiriev/go-fit-exporter/models"
)

const (
	activitiesBanner = "--- Starting activities download ---"
	healthBanner     = "--- Starting health and wellness data download ---"
)

// ActivitiesWorker exports every activity of the date range.
type ActivitiesWorker struct {
	service   service.ActivityExportService
	dateRange models.DateRange
	out       io.Writer
	logger    *logger.Logger
}

func NewActivitiesWorker(svc service.ActivityExportService, dateRange models.DateRange, out io.Writer, logger *logger.Logger) *ActivitiesWorker {
	return &ActivitiesWorker{service: svc, dateRange: dateRange, out: out, logger: logger}
}

func (w *ActivitiesWorker) Name() string {
	return "activities"
}

func (w *ActivitiesWorker) Run(ctx context.Context) error {
	fmt.Fprintln(w.out, activitiesBanner)

	n, err := w.service.ExportActivities(ctx, w.dateRange)
	if err != nil {
		return err
	}

	w.logger.Info().Int("activities", n).Str("range", w.dateRange.String()).Msg("activities exported")
	return nil
}

// HealthWorker exports the daily health documents of the date range.
type HealthWorker struct {
	service     service.HealthExportService
	dateRange   models.DateRange
	displayName string
	out         io.Writer
	logger      *logger.Logger
}

func NewHealthWorker(svc service.HealthExportService, dateRange models.DateRange, displayName string, out io.Writer, logger *logger.Logger) *HealthWorker {
	return &HealthWorker{service: svc, dateRange: dateRange, displayName: displayName, out: out, logger: logger}
}

func (w *HealthWorker) Name() string {
	return "health"
}

func (w *HealthWorker) Run(ctx context.Context) error {
	fmt.Fprintln(w.out, healthBanner)

	if err := w.service.ExportHealth(ctx, w.dateRange, w.displayName); err != nil {
		return err
	}

	w.logger.Info().Int("days", len(w.dateRange.Days())).Msg("health data exported")
	return nil
}
