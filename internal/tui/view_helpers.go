// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// renderForm lays out prompt lines under an optional title, followed by an
// error line and the key help.
func renderForm(title string, lines []string, errMsg, hotKeys string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n\n")
	}

	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
