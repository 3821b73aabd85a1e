// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-fit-exporter/models"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore keeps the cached session token between runs.
type SessionStore interface {
	// Load returns the cached token. Returns [ErrLocalSessionNotFound] when
	// nothing is cached and [ErrInvalidSessionToken] when the cache is
	// unreadable.
	Load(ctx context.Context) (*oauth2.Token, error)
	// Save replaces the cached token.
	Save(ctx context.Context, token *oauth2.Token) error
	// Remove deletes the cached token. Removing a missing token is not an error.
	Remove(ctx context.Context) error
}

// ExportFileStore owns the on-disk layout data/<date>/activities/<id>/ and
// data/<date>/health/. Every write creates the target directory first.
type ExportFileStore interface {
	ActivityDir(date, activityID string) string
	HealthDir(date string) string
	// WriteJSON writes doc indented with two spaces.
	WriteJSON(ctx context.Context, dir, name string, doc json.RawMessage) (models.StoredFile, error)
	// WriteBinary writes data byte for byte.
	WriteBinary(ctx context.Context, dir, name string, data []byte) (models.StoredFile, error)
}

// ExportJournal records export runs and the files they wrote. It is an audit
// trail only; nothing in the export reads it back.
type ExportJournal interface {
	StartRun(ctx context.Context, run models.ExportRun) error
	RecordFile(ctx context.Context, file models.ExportedFile) error
	FinishRun(ctx context.Context, runID string, status models.RunStatus, runErr error) error
	ListRuns(ctx context.Context, limit int) ([]models.ExportRun, error)
}
