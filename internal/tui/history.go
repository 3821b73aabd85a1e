// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const historyErrorWidth = 40

var historyHeaders = []string{"Run", "Range", "Status", "Files", "Bytes", "Started", "Finished", "Error"}

// RenderHistory renders export runs as a table, newest first as given.
func RenderHistory(runs []models.ExportRun) string {
	if len(runs) == 0 {
		return "No export runs recorded yet.\n"
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.RunID,
			run.StartDate + ".." + run.EndDate,
			string(run.Status),
			strconv.Itoa(run.Files),
			strconv.FormatInt(run.Bytes, 10),
			formatTime(&run.StartedAt),
			formatTime(run.FinishedAt),
			fitText(valueOrDash(run.Error), historyErrorWidth),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(historyHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if row >= 0 && row < len(runs) && runs[row].Status == models.RunStatusFailed {
				return failedCellStyle
			}
			return tableCellStyle
		})

	return fmt.Sprintf("%s\n%s\n", titleStyle.Render("Export history"), t.Render())
}
