// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/mock"
	"github.com/MKhiriev/go-fit-exporter/internal/service"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/internal/validators"
	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubUI: простая реализация UI, не требует mockgen.
type stubUI struct {
	dateRange    models.DateRange
	dateRangeErr error
	prompted     int
	shownRuns    []models.ExportRun
}

func (s *stubUI) DateRange(context.Context) (models.DateRange, error) {
	s.prompted++
	return s.dateRange, s.dateRangeErr
}

func (s *stubUI) ShowHistory(w io.Writer, runs []models.ExportRun) error {
	s.shownRuns = runs
	_, err := io.WriteString(w, "history\n")
	return err
}

type testServices struct {
	auth       *mock.MockAuthService
	activities *mock.MockActivityExportService
	health     *mock.MockHealthExportService
	history    *mock.MockHistoryService
}

func newTestApp(t *testing.T, run config.ExporterRun) (*App, testServices, *stubUI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := testServices{
		auth:       mock.NewMockAuthService(ctrl),
		activities: mock.NewMockActivityExportService(ctrl),
		health:     mock.NewMockHealthExportService(ctrl),
		history:    mock.NewMockHistoryService(ctrl),
	}
	services := &service.ClientServices{
		AuthService:     ts.auth,
		ActivityService: ts.activities,
		HealthService:   ts.health,
		HistoryService:  ts.history,
	}

	ui := &stubUI{dateRange: models.NewDateRange(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	)}
	out := &bytes.Buffer{}

	a, err := NewApp(services, ui, run, out, logger.Nop())
	require.NoError(t, err)
	return a, ts, ui, out
}

var testSession = models.Session{Profile: models.Profile{DisplayName: "runner"}}

func TestApp_Run_FullExport(t *testing.T) {
	a, ts, ui, out := newTestApp(t, config.ExporterRun{})
	ctx := context.Background()
	runCtx := utils.WithRunID(ctx, "run-1")

	gomock.InOrder(
		ts.auth.EXPECT().AcquireSession(ctx).Return(testSession, nil),
		ts.history.EXPECT().StartRun(ctx, ui.dateRange).Return(runCtx, "run-1", nil),
		ts.activities.EXPECT().ExportActivities(runCtx, ui.dateRange).Return(2, nil),
		ts.health.EXPECT().ExportHealth(runCtx, ui.dateRange, "runner").Return(nil),
		ts.auth.EXPECT().PersistSession(ctx).Return(nil),
		ts.history.EXPECT().FinishRun(ctx, "run-1", nil).Return(nil),
	)

	require.NoError(t, a.Run(ctx))

	assert.Equal(t, 1, ui.prompted)
	assert.Equal(t,
		"--- Starting activities download ---\n"+
			"--- Starting health and wellness data download ---\n"+
			"Export finished.\n",
		out.String())
}

func TestApp_Run_ConfiguredDateRangeSkipsPrompt(t *testing.T) {
	a, ts, ui, _ := newTestApp(t, config.ExporterRun{StartDate: "2024-02-10", EndDate: "2024-02-12", SkipHealth: true})
	ctx := context.Background()

	want := models.NewDateRange(
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
	)

	ts.auth.EXPECT().AcquireSession(ctx).Return(testSession, nil)
	ts.history.EXPECT().StartRun(ctx, want).Return(ctx, "run-2", nil)
	ts.activities.EXPECT().ExportActivities(ctx, want).Return(0, nil)
	ts.auth.EXPECT().PersistSession(ctx).Return(nil)
	ts.history.EXPECT().FinishRun(ctx, "run-2", nil).Return(nil)

	require.NoError(t, a.Run(ctx))
	assert.Zero(t, ui.prompted)
}

func TestApp_Run_InvalidConfiguredDateRange(t *testing.T) {
	a, ts, _, _ := newTestApp(t, config.ExporterRun{StartDate: "2024-02-12", EndDate: "2024-02-10"})
	ctx := context.Background()

	ts.auth.EXPECT().AcquireSession(ctx).Return(testSession, nil)

	err := a.Run(ctx)
	assert.ErrorIs(t, err, validators.ErrInvertedRange)
}

func TestApp_Run_AuthenticationFailedIsFatal(t *testing.T) {
	a, ts, ui, _ := newTestApp(t, config.ExporterRun{})
	ctx := context.Background()

	ts.auth.EXPECT().AcquireSession(ctx).Return(models.Session{}, service.ErrAuthenticationFailed)

	err := a.Run(ctx)
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	assert.Zero(t, ui.prompted)
}

func TestApp_Run_ExportErrorFailsRun(t *testing.T) {
	a, ts, _, out := newTestApp(t, config.ExporterRun{SkipActivities: true})
	ctx := context.Background()
	boom := errors.New("boom")

	ts.auth.EXPECT().AcquireSession(ctx).Return(testSession, nil)
	ts.history.EXPECT().StartRun(ctx, gomock.Any()).Return(ctx, "run-3", nil)
	ts.health.EXPECT().ExportHealth(ctx, gomock.Any(), "runner").Return(boom)
	ts.history.EXPECT().FinishRun(ctx, "run-3", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, runErr error) error {
			assert.ErrorIs(t, runErr, boom)
			return nil
		},
	)
	// PersistSession не вызывается после ошибки экспорта

	err := a.Run(ctx)
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, out.String(), "Export finished.")
}

func TestApp_Run_JournalUnavailableDoesNotStopExport(t *testing.T) {
	a, ts, ui, _ := newTestApp(t, config.ExporterRun{SkipHealth: true})
	ctx := context.Background()

	ts.auth.EXPECT().AcquireSession(ctx).Return(testSession, nil)
	ts.history.EXPECT().StartRun(ctx, ui.dateRange).Return(ctx, "", errors.New("database is locked"))
	ts.activities.EXPECT().ExportActivities(ctx, ui.dateRange).Return(1, nil)
	ts.auth.EXPECT().PersistSession(ctx).Return(nil)

	require.NoError(t, a.Run(ctx))
}

func TestApp_Run_DateRangePromptCancelled(t *testing.T) {
	a, ts, ui, _ := newTestApp(t, config.ExporterRun{})
	ctx := context.Background()
	ui.dateRangeErr = errors.New("input cancelled by user")

	ts.auth.EXPECT().AcquireSession(ctx).Return(testSession, nil)

	err := a.Run(ctx)
	assert.ErrorIs(t, err, ui.dateRangeErr)
}

func TestApp_Run_History(t *testing.T) {
	a, ts, ui, out := newTestApp(t, config.ExporterRun{History: true, HistoryLimit: 10})
	ctx := context.Background()

	runs := []models.ExportRun{{RunID: "run-1"}}
	ts.history.EXPECT().ListRuns(ctx, 10).Return(runs, nil)

	require.NoError(t, a.Run(ctx))
	assert.Equal(t, runs, ui.shownRuns)
	assert.Equal(t, "history\n", out.String())
}

func TestNewApp_MissingDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, config.ExporterRun{}, io.Discard, logger.Nop())
	assert.Error(t, err)
}
