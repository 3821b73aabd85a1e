// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/models"
)

const (
	activitiesDir = "activities"
	healthDir     = "health"
)

type exportFileStore struct {
	root   string
	logger *logger.Logger
}

// NewExportFileStore returns an [ExportFileStore] rooted at root (the data
// directory). Existing files are overwritten.
func NewExportFileStore(root string, logger *logger.Logger) ExportFileStore {
	return &exportFileStore{root: root, logger: logger}
}

func (e *exportFileStore) ActivityDir(date, activityID string) string {
	return filepath.Join(e.root, date, activitiesDir, activityID)
}

func (e *exportFileStore) HealthDir(date string) string {
	return filepath.Join(e.root, date, healthDir)
}

func (e *exportFileStore) WriteJSON(ctx context.Context, dir, name string, doc json.RawMessage) (models.StoredFile, error) {
	if len(doc) == 0 {
		doc = json.RawMessage("null")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return models.StoredFile{}, fmt.Errorf("indent %s: %w", name, err)
	}

	return e.write(ctx, dir, name, buf.Bytes())
}

func (e *exportFileStore) WriteBinary(ctx context.Context, dir, name string, data []byte) (models.StoredFile, error) {
	return e.write(ctx, dir, name, data)
}

func (e *exportFileStore) write(ctx context.Context, dir, name string, data []byte) (models.StoredFile, error) {
	log := e.logger

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "exportFileStore.write").Str("dir", dir).Msg("error creating export directory")
		return models.StoredFile{}, fmt.Errorf("create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Err(err).Str("func", "exportFileStore.write").Str("path", path).Msg("error writing export file")
		return models.StoredFile{}, fmt.Errorf("write %s: %w", path, err)
	}

	return models.StoredFile{
		Path:     path,
		Bytes:    int64(len(data)),
		Checksum: utils.Checksum(data),
	}, nil
}
