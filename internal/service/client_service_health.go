// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-fit-exporter/internal/adapter"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/models"
)

type clientHealthService struct {
	adapter  adapter.ConnectAdapter
	recorder *fileRecorder
	out      io.Writer
	logger   *logger.Logger
}

func NewClientHealthService(
	connectAdapter adapter.ConnectAdapter,
	files store.ExportFileStore,
	journal store.ExportJournal,
	out io.Writer,
	logger *logger.Logger,
) HealthExportService {
	return &clientHealthService{
		adapter:  connectAdapter,
		recorder: &fileRecorder{files: files, journal: journal},
		out:      out,
		logger:   logger,
	}
}

func (s *clientHealthService) ExportHealth(ctx context.Context, dateRange models.DateRange, displayName string) error {
	if displayName == "" {
		return ErrNoDisplayName
	}

	for _, day := range dateRange.Days() {
		if err := ctx.Err(); err != nil {
			return mapAdapterError(err)
		}

		date := day.Format(models.DateLayout)
		dir := s.recorder.files.HealthDir(date)

		fmt.Fprintf(s.out, "Downloading health and wellness data from %s\n", date)

		for _, category := range models.HealthCategories {
			doc, err := s.fetch(ctx, displayName, category, date)
			if err != nil {
				return fmt.Errorf("%s %s: %w", date, category, err)
			}

			meta := fileMeta{category: string(category), date: date}
			if err = s.recorder.writeJSON(ctx, dir, category.FileName(), doc, meta); err != nil {
				return err
			}
		}
		s.logger.Debug().Str("date", date).Int("categories", len(models.HealthCategories)).Msg("health day exported")
	}

	return nil
}

func (s *clientHealthService) fetch(ctx context.Context, displayName string, category models.HealthCategory, date string) (json.RawMessage, error) {
	doc, err := s.adapter.GetHealth(ctx, displayName, category, date)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if category != models.HealthSummary {
		return doc, nil
	}

	body, err := s.adapter.GetBodyComposition(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("body composition: %w", mapAdapterError(err))
	}
	return mergeSummary(doc, body)
}

// mergeSummary adds the fields of the body composition "totalAverage" object
// to the daily summary. Body composition values win on key collisions.
func mergeSummary(summary, bodyComposition json.RawMessage) (json.RawMessage, error) {
	merged := map[string]json.RawMessage{}
	if len(summary) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(summary, &fields); err != nil {
			return nil, fmt.Errorf("decode daily summary: %w", err)
		}
		for k, v := range fields {
			merged[k] = v
		}
	}

	if len(bodyComposition) > 0 {
		var body struct {
			TotalAverage map[string]json.RawMessage `json:"totalAverage"`
		}
		if err := json.Unmarshal(bodyComposition, &body); err != nil {
			return nil, fmt.Errorf("decode body composition: %w", err)
		}
		for k, v := range body.TotalAverage {
			merged[k] = v
		}
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return out, nil
}
