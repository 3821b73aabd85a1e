// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive prompts of the exporter with
// bubbletea: the credential login form, the date range form and the export
// history table.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/validators"
	"github.com/MKhiriev/go-fit-exporter/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	preset    models.Credentials
	validator validators.Validator
	options   []tea.ProgramOption
	logger    *logger.Logger
}

// New creates the terminal UI. Credentials present in cfg are used without
// prompting.
func New(cfg config.ExporterApp, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		preset:    models.Credentials{Email: cfg.Email, Password: cfg.Password},
		validator: validators.NewExportValidator(),
		options:   options,
		logger:    logger,
	}
}

// Credentials returns the configured credentials when both are set and asks
// for the missing ones otherwise.
func (t *TUI) Credentials(ctx context.Context) (models.Credentials, error) {
	if t.preset.Complete() {
		return t.preset, nil
	}

	final, err := t.run(ctx, NewLoginForm(t.preset))
	if err != nil {
		return models.Credentials{}, err
	}

	form, ok := final.(LoginForm)
	if !ok {
		return models.Credentials{}, ErrUnexpectedModel
	}
	if form.quit || !form.submitted {
		return models.Credentials{}, ErrUserQuit
	}

	t.logger.Debug().Str("email", form.Credentials().Email).Msg("credentials entered")
	return form.Credentials(), nil
}

// DateRange prompts for the start and end date.
func (t *TUI) DateRange(ctx context.Context) (models.DateRange, error) {
	final, err := t.run(ctx, NewDateRangeForm(ctx, t.validator))
	if err != nil {
		return models.DateRange{}, err
	}

	form, ok := final.(DateRangeForm)
	if !ok {
		return models.DateRange{}, ErrUnexpectedModel
	}
	dateRange, submitted := form.DateRange()
	if form.quit || !submitted {
		return models.DateRange{}, ErrUserQuit
	}

	return dateRange, nil
}

// ShowHistory writes the export history table to w.
func (t *TUI) ShowHistory(w io.Writer, runs []models.ExportRun) error {
	_, err := io.WriteString(w, RenderHistory(runs))
	return err
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
