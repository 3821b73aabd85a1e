// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-fit-exporter/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the runtime.
type UI interface {
	// DateRange asks the user for the export date range.
	DateRange(ctx context.Context) (models.DateRange, error)
	// ShowHistory writes the export journal to w.
	ShowHistory(w io.Writer, runs []models.ExportRun) error
}
