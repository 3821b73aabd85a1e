// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RunStatus is the terminal state of an export run in the journal.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusFinished RunStatus = "finished"
	RunStatusFailed   RunStatus = "failed"
)

// ExportRun is one invocation of the exporter as recorded in the journal.
type ExportRun struct {
	RunID      string
	StartDate  string
	EndDate    string
	Status     RunStatus
	Files      int
	Bytes      int64
	StartedAt  time.Time
	FinishedAt *time.Time
	Error      string
}

// ExportedFile describes one file written during a run.
type ExportedFile struct {
	RunID        string
	Category     string
	CalendarDate string
	// ActivityID is zero for health documents.
	ActivityID int64
	Path       string
	Bytes      int64
	Checksum   string
	WrittenAt  time.Time
}

// StoredFile is what the file store reports back after a write.
type StoredFile struct {
	Path     string
	Bytes    int64
	Checksum string
}
