// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/models"
)

type exportJournalRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewExportJournalRepository returns the SQLite-backed [ExportJournal].
func NewExportJournalRepository(db *DB, logger *logger.Logger) ExportJournal {
	return &exportJournalRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *exportJournalRepository) StartRun(ctx context.Context, run models.ExportRun) error {
	if run.Status == "" {
		run.Status = models.RunStatusRunning
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = r.now()
	}

	query, args, err := buildInsertRunQuery(run)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "exportJournalRepository.StartRun").
			Str("run_id", run.RunID).
			Msg("failed to insert export run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *exportJournalRepository) RecordFile(ctx context.Context, file models.ExportedFile) error {
	if file.WrittenAt.IsZero() {
		file.WrittenAt = r.now()
	}

	query, args, err := buildInsertFileQuery(file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "exportJournalRepository.RecordFile").
			Str("run_id", file.RunID).
			Str("path", file.Path).
			Msg("failed to insert exported file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *exportJournalRepository) FinishRun(ctx context.Context, runID string, status models.RunStatus, runErr error) error {
	var errText string
	if runErr != nil {
		errText = runErr.Error()
	}

	query, args, err := buildFinishRunQuery(runID, status, r.now(), errText)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "exportJournalRepository.FinishRun").
			Str("run_id", runID).
			Msg("failed to update export run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRunNotFound
	}

	return nil
}

func (r *exportJournalRepository) ListRuns(ctx context.Context, limit int) ([]models.ExportRun, error) {
	query, args, err := buildListRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "exportJournalRepository.ListRuns").Msg("failed to query export runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.ExportRun
	for rows.Next() {
		var (
			run        models.ExportRun
			status     string
			finishedAt sql.NullTime
		)
		if err = rows.Scan(
			&run.RunID,
			&run.StartDate,
			&run.EndDate,
			&status,
			&run.StartedAt,
			&finishedAt,
			&run.Error,
			&run.Files,
			&run.Bytes,
		); err != nil {
			r.logger.Err(err).Str("func", "exportJournalRepository.ListRuns").Msg("failed to scan export run")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		run.Status = models.RunStatus(status)
		if finishedAt.Valid {
			t := finishedAt.Time
			run.FinishedAt = &t
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}
