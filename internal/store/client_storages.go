// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
)

// ClientStorages groups all local storages into a single value that can be
// passed around the service layer.
type ClientStorages struct {
	// SessionStore keeps the cached session token.
	SessionStore SessionStore
	// FileStore writes exported documents under the data directory.
	FileStore ExportFileStore
	// Journal is the SQLite-backed record of export runs.
	Journal ExportJournal

	db *DB
}

// NewClientStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the token store and the export file store to their directories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ExporterStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewFileSessionStore(cfg.TokenStore, logger),
		FileStore:    NewExportFileStore(cfg.DataDir, logger),
		Journal:      NewExportJournalRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the journal database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
