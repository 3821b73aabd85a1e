// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHistory_Empty(t *testing.T) {
	assert.Equal(t, "No export runs recorded yet.\n", RenderHistory(nil))
}

func TestRenderHistory_Rows(t *testing.T) {
	finished := time.Date(2024, 3, 4, 10, 5, 0, 0, time.UTC)
	runs := []models.ExportRun{
		{
			RunID:      "run-2",
			StartDate:  "2024-03-01",
			EndDate:    "2024-03-03",
			Status:     models.RunStatusFailed,
			Files:      12,
			Bytes:      4096,
			StartedAt:  finished.Add(-time.Minute),
			FinishedAt: &finished,
			Error:      strings.Repeat("x", 100),
		},
		{
			RunID:     "run-1",
			StartDate: "2024-02-01",
			EndDate:   "2024-02-01",
			Status:    models.RunStatusRunning,
			StartedAt: finished.Add(-time.Hour),
		},
	}

	out := RenderHistory(runs)

	assert.Contains(t, out, "Export history")
	for _, h := range historyHeaders {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "run-2")
	assert.Contains(t, out, "2024-03-01..2024-03-03")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "4096")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "running")
	// Ошибка обрезается до ширины колонки
	assert.Contains(t, out, strings.Repeat("x", historyErrorWidth-3)+"...")
	assert.NotContains(t, out, strings.Repeat("x", historyErrorWidth))
	assert.Less(t, strings.Index(out, "run-2"), strings.Index(out, "run-1"))
}

func TestTUI_ShowHistory(t *testing.T) {
	ui := New(config.ExporterApp{}, logger.Nop())
	var buf bytes.Buffer

	require.NoError(t, ui.ShowHistory(&buf, nil))
	assert.Equal(t, "No export runs recorded yet.\n", buf.String())
}

func TestTUI_Credentials_Preset(t *testing.T) {
	ui := New(config.ExporterApp{Email: "runner@example.com", Password: "secret"}, logger.Nop())

	creds, err := ui.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{Email: "runner@example.com", Password: "secret"}, creds)
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("v1.2.0", "", "abc123"))

	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123\n", out)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "abc", fitText("abc", 0))
}
