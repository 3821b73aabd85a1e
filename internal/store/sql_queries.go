// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fit-exporter/models"
)

const (
	exportRunsTable    = "export_runs"
	exportedFilesTable = "exported_files"
)

// sqlBuilder emits "?" placeholders as expected by go-sqlite3.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertRunQuery(run models.ExportRun) (string, []any, error) {
	return sqlBuilder.
		Insert(exportRunsTable).
		Columns("run_id", "start_date", "end_date", "status", "started_at", "error").
		Values(run.RunID, run.StartDate, run.EndDate, string(run.Status), run.StartedAt.UTC(), run.Error).
		ToSql()
}

func buildInsertFileQuery(file models.ExportedFile) (string, []any, error) {
	return sqlBuilder.
		Insert(exportedFilesTable).
		Columns("run_id", "category", "calendar_date", "activity_id", "path", "bytes", "checksum", "written_at").
		Values(file.RunID, file.Category, file.CalendarDate, file.ActivityID, file.Path, file.Bytes, file.Checksum, file.WrittenAt.UTC()).
		ToSql()
}

func buildFinishRunQuery(runID string, status models.RunStatus, finishedAt time.Time, runErr string) (string, []any, error) {
	return sqlBuilder.
		Update(exportRunsTable).
		Set("status", string(status)).
		Set("finished_at", finishedAt.UTC()).
		Set("error", runErr).
		Where(sq.Eq{"run_id": runID}).
		ToSql()
}

// buildListRunsQuery selects the newest runs first together with the number
// and total size of the files each of them wrote.
func buildListRunsQuery(limit int) (string, []any, error) {
	query := sqlBuilder.
		Select(
			"r.run_id",
			"r.start_date",
			"r.end_date",
			"r.status",
			"r.started_at",
			"r.finished_at",
			"r.error",
			"COUNT(f.id)",
			"COALESCE(SUM(f.bytes), 0)",
		).
		From(exportRunsTable + " r").
		LeftJoin(exportedFilesTable + " f ON f.run_id = r.run_id").
		GroupBy("r.run_id").
		OrderBy("r.started_at DESC", "r.run_id DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}
