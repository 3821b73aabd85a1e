// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-fit-exporter/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// CredentialSource supplies the account credentials when no cached session can
// be used. Implementations may read them from configuration, ask the user, or
// both.
type CredentialSource interface {
	Credentials(ctx context.Context) (models.Credentials, error)
}

// IDGenerator produces unique export run identifiers.
type IDGenerator interface {
	Generate() string
}

// AuthService obtains an authenticated session for the remote service.
type AuthService interface {
	// AcquireSession restores the cached session token. When no usable token
	// is cached it asks the [CredentialSource] for credentials, logs in and
	// caches the new token. Authentication failure is returned as an error
	// wrapping [ErrAuthenticationFailed]; no token is saved in that case.
	AcquireSession(ctx context.Context) (models.Session, error)

	// PersistSession writes the current (possibly refreshed) token back to
	// the token store.
	PersistSession(ctx context.Context) error
}

// ActivityExportService downloads every activity of a date range.
type ActivityExportService interface {
	// ExportActivities lists the activities whose start date lies in
	// dateRange and writes, per activity, the list entry, the weather,
	// heart-rate zone and details documents and the GPX, TCX and original
	// files. Returns the number of exported activities.
	ExportActivities(ctx context.Context, dateRange models.DateRange) (int, error)
}

// HealthExportService downloads the daily health and wellness documents.
type HealthExportService interface {
	// ExportHealth writes one file per health category for every day of
	// dateRange. displayName is the profile name used in several endpoint
	// paths.
	ExportHealth(ctx context.Context, dateRange models.DateRange, displayName string) error
}

// HistoryService keeps the export journal.
type HistoryService interface {
	// StartRun records a new run and returns a context carrying its id, so
	// exporters can attribute the files they write.
	StartRun(ctx context.Context, dateRange models.DateRange) (context.Context, string, error)
	// FinishRun marks the run finished, or failed when runErr is not nil.
	FinishRun(ctx context.Context, runID string, runErr error) error
	// ListRuns returns the newest runs first.
	ListRuns(ctx context.Context, limit int) ([]models.ExportRun, error)
}
