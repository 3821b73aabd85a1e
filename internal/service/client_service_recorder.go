// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/models"
)

// fileRecorder writes export files and mirrors every successful write into
// the journal of the run found in the context. Journal failures are logged
// with the run logger carried by the context and never abort the export.
type fileRecorder struct {
	files   store.ExportFileStore
	journal store.ExportJournal
}

// fileMeta attributes a written file in the journal.
type fileMeta struct {
	category   string
	date       string
	activityID int64
}

func (r *fileRecorder) writeJSON(ctx context.Context, dir, name string, doc json.RawMessage, meta fileMeta) error {
	stored, err := r.files.WriteJSON(ctx, dir, name, doc)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	r.record(ctx, stored, meta)
	return nil
}

func (r *fileRecorder) writeBinary(ctx context.Context, dir, name string, data []byte, meta fileMeta) error {
	stored, err := r.files.WriteBinary(ctx, dir, name, data)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	r.record(ctx, stored, meta)
	return nil
}

func (r *fileRecorder) record(ctx context.Context, stored models.StoredFile, meta fileMeta) {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok || r.journal == nil {
		return
	}

	err := r.journal.RecordFile(ctx, models.ExportedFile{
		RunID:        runID,
		Category:     meta.category,
		CalendarDate: meta.date,
		ActivityID:   meta.activityID,
		Path:         stored.Path,
		Bytes:        stored.Bytes,
		Checksum:     stored.Checksum,
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "fileRecorder.record").
			Str("path", stored.Path).
			Msg("failed to record exported file in journal")
	}
}
