// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-fit-exporter/internal/app"
	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/service"
	"github.com/MKhiriev/go-fit-exporter/internal/validators"
	"github.com/MKhiriev/go-fit-exporter/internal/workers"
	"github.com/MKhiriev/go-fit-exporter/models"
)

type App struct {
	services  *service.ClientServices
	ui        UI
	run       config.ExporterRun
	validator validators.Validator
	out       io.Writer
	logger    *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, run config.ExporterRun, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services:  services,
		ui:        ui,
		run:       run,
		validator: validators.NewExportValidator(),
		out:       out,
		logger:    logger,
	}, nil
}

// Run performs one export: acquire a session, read the date range, export
// activities then health data, persist the token and close the journal run.
// With the history option set it only prints the journal.
func (a *App) Run(ctx context.Context) error {
	if a.run.History {
		return a.showHistory(ctx)
	}

	session, err := a.services.AuthService.AcquireSession(ctx)
	if err != nil {
		return fmt.Errorf("acquire session: %w", err)
	}

	dateRange, err := a.dateRange(ctx)
	if err != nil {
		return err
	}

	runCtx, runID, err := a.services.HistoryService.StartRun(ctx, dateRange)
	if err != nil {
		a.logger.Warn().Err(err).Msg(app.MsgJournalUnavailable)
		runCtx = ctx
	}

	exportErr := a.export(runCtx, dateRange, session.Profile.DisplayName)
	if exportErr == nil {
		exportErr = a.services.AuthService.PersistSession(ctx)
	}

	if runID != "" {
		if err = a.services.HistoryService.FinishRun(ctx, runID, exportErr); err != nil {
			a.logger.Warn().Err(err).Str("run_id", runID).Msg(app.MsgJournalUnavailable)
		}
	}

	if exportErr != nil {
		return exportErr
	}

	fmt.Fprintln(a.out, app.MsgExportFinished)
	return nil
}

func (a *App) export(ctx context.Context, dateRange models.DateRange, displayName string) error {
	chain := workers.NewWorkers(a.logger)
	if !a.run.SkipActivities {
		chain.Add(workers.NewActivitiesWorker(a.services.ActivityService, dateRange, a.out, a.logger))
	}
	if !a.run.SkipHealth {
		chain.Add(workers.NewHealthWorker(a.services.HealthService, dateRange, displayName, a.out, a.logger))
	}

	return chain.Run(ctx)
}

// dateRange uses the configured dates when both are set and prompts otherwise.
func (a *App) dateRange(ctx context.Context) (models.DateRange, error) {
	if a.run.StartDate != "" && a.run.EndDate != "" {
		dateRange, err := validators.ParseDateRange(ctx, a.validator, a.run.StartDate, a.run.EndDate)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("configured date range: %w", err)
		}
		return dateRange, nil
	}

	dateRange, err := a.ui.DateRange(ctx)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("read date range: %w", err)
	}
	return dateRange, nil
}

func (a *App) showHistory(ctx context.Context) error {
	runs, err := a.services.HistoryService.ListRuns(ctx, a.run.HistoryLimit)
	if err != nil {
		return err
	}
	return a.ui.ShowHistory(a.out, runs)
}
