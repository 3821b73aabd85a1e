// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-fit-exporter/internal/adapter"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/models"
)

// activityDocuments are fetched per activity after the list entry is written.
var activityDocuments = []models.ActivityDocument{
	models.ActivityWeather,
	models.ActivityHRZones,
	models.ActivityDetails,
}

type clientActivityService struct {
	adapter  adapter.ConnectAdapter
	recorder *fileRecorder
	pageSize int
	out      io.Writer
	logger   *logger.Logger
}

func NewClientActivityService(
	connectAdapter adapter.ConnectAdapter,
	files store.ExportFileStore,
	journal store.ExportJournal,
	pageSize int,
	out io.Writer,
	logger *logger.Logger,
) ActivityExportService {
	if pageSize <= 0 {
		pageSize = 20
	}

	return &clientActivityService{
		adapter:  connectAdapter,
		recorder: &fileRecorder{files: files, journal: journal},
		pageSize: pageSize,
		out:      out,
		logger:   logger,
	}
}

func (s *clientActivityService) ExportActivities(ctx context.Context, dateRange models.DateRange) (int, error) {
	activities, err := s.listActivities(ctx, dateRange)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int("activities", len(activities)).Str("range", dateRange.String()).Msg("activities listed")

	for i, activity := range activities {
		if err = ctx.Err(); err != nil {
			return i, mapAdapterError(err)
		}
		if err = s.exportActivity(ctx, activity); err != nil {
			return i, fmt.Errorf("activity %d: %w", activity.ActivityID, err)
		}
	}

	return len(activities), nil
}

// listActivities pages through the search endpoint until it returns an empty
// page.
func (s *clientActivityService) listActivities(ctx context.Context, dateRange models.DateRange) ([]models.ActivitySummary, error) {
	var activities []models.ActivitySummary
	for start := 0; ; start += s.pageSize {
		page, err := s.adapter.ListActivities(ctx, dateRange, start, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", mapAdapterError(err))
		}
		if len(page) == 0 {
			return activities, nil
		}
		activities = append(activities, page...)
	}
}

func (s *clientActivityService) exportActivity(ctx context.Context, activity models.ActivitySummary) error {
	date, err := activity.Date()
	if err != nil {
		return err
	}
	id := activity.ID()
	dir := s.recorder.files.ActivityDir(date, id)

	fmt.Fprintf(s.out, "Downloading activity from %s\n", date)

	meta := fileMeta{category: models.ActivityRecord.Category(), date: date, activityID: activity.ActivityID}
	if err = s.recorder.writeJSON(ctx, dir, models.ActivityRecord.FileName(id), activity.Raw, meta); err != nil {
		return err
	}

	for _, document := range activityDocuments {
		doc, err := s.adapter.GetActivityDocument(ctx, activity.ActivityID, document)
		if err != nil {
			return fmt.Errorf("get %s: %w", document.Category(), mapAdapterError(err))
		}

		meta.category = document.Category()
		if err = s.recorder.writeJSON(ctx, dir, document.FileName(id), doc, meta); err != nil {
			return err
		}
	}

	for _, format := range models.ActivityFormats {
		data, err := s.adapter.DownloadActivity(ctx, activity.ActivityID, format)
		if err != nil {
			return fmt.Errorf("download %s: %w", format, mapAdapterError(err))
		}

		meta.category = format.Extension()
		if err = s.recorder.writeBinary(ctx, dir, id+"."+format.Extension(), data, meta); err != nil {
			return err
		}
	}

	return nil
}
