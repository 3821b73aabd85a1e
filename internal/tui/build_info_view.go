// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-fit-exporter/models"
)

// RenderBuildInfo renders the version banner printed at startup.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Build version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Build date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Build commit: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")

	return b.String()
}
