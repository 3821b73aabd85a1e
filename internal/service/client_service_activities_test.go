// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/adapter"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/mock"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testDateRange(days int) models.DateRange {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return models.NewDateRange(start, start.AddDate(0, 0, days-1))
}

func activitySummary(t *testing.T, id int64, startTimeLocal string) models.ActivitySummary {
	t.Helper()
	raw := fmt.Sprintf(`{"activityId":%d,"startTimeLocal":%q,"activityName":"Run"}`, id, startTimeLocal)

	var a models.ActivitySummary
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	return a
}

// expectActivityDownloads настраивает ответы адаптера для одной активности.
func expectActivityDownloads(connect *mock.MockConnectAdapter, id int64) {
	for _, doc := range activityDocuments {
		connect.EXPECT().GetActivityDocument(gomock.Any(), id, doc).
			Return(json.RawMessage(fmt.Sprintf(`{"doc":%q}`, doc.Category())), nil)
	}
	for _, format := range models.ActivityFormats {
		connect.EXPECT().DownloadActivity(gomock.Any(), id, format).
			Return([]byte("payload-"+format.Extension()), nil)
	}
}

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func TestClientActivityService_ExportActivities_Layout(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	root := t.TempDir()
	var out bytes.Buffer

	svc := NewClientActivityService(connect, store.NewExportFileStore(root, logger.Nop()), nil, 2, &out, logger.Nop())
	dr := testDateRange(3)
	ctx := context.Background()

	first := activitySummary(t, 101, "2024-03-01 07:15:00")
	second := activitySummary(t, 102, "2024-03-03 18:40:12")

	gomock.InOrder(
		connect.EXPECT().ListActivities(ctx, dr, 0, 2).Return([]models.ActivitySummary{first, second}, nil),
		connect.EXPECT().ListActivities(ctx, dr, 2, 2).Return(nil, nil),
	)
	expectActivityDownloads(connect, 101)
	expectActivityDownloads(connect, 102)

	n, err := svc.ExportActivities(ctx, dr)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, []string{
		"2024-03-01/activities/101/101.fit",
		"2024-03-01/activities/101/101.gpx",
		"2024-03-01/activities/101/101.json",
		"2024-03-01/activities/101/101.tcx",
		"2024-03-01/activities/101/101_details.json",
		"2024-03-01/activities/101/101_hr-zones.json",
		"2024-03-01/activities/101/101_weather.json",
		"2024-03-03/activities/102/102.fit",
		"2024-03-03/activities/102/102.gpx",
		"2024-03-03/activities/102/102.json",
		"2024-03-03/activities/102/102.tcx",
		"2024-03-03/activities/102/102_details.json",
		"2024-03-03/activities/102/102_hr-zones.json",
		"2024-03-03/activities/102/102_weather.json",
	}, listFiles(t, root))

	assert.Equal(t,
		"Downloading activity from 2024-03-01\nDownloading activity from 2024-03-03\n",
		out.String())

	record, err := os.ReadFile(filepath.Join(root, "2024-03-01/activities/101/101.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"activityId\": 101,\n  \"startTimeLocal\": \"2024-03-01 07:15:00\",\n  \"activityName\": \"Run\"\n}", string(record))

	fit, err := os.ReadFile(filepath.Join(root, "2024-03-01/activities/101/101.fit"))
	require.NoError(t, err)
	assert.Equal(t, "payload-fit", string(fit))
}

func TestClientActivityService_ExportActivities_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	files := mock.NewMockExportFileStore(ctrl)
	ctx := context.Background()
	dr := testDateRange(1)

	svc := NewClientActivityService(connect, files, nil, 0, &bytes.Buffer{}, logger.Nop())

	// Размер страницы по умолчанию 20, листаем до пустой страницы
	connect.EXPECT().ListActivities(ctx, dr, 0, 20).Return([]models.ActivitySummary{}, nil)

	n, err := svc.ExportActivities(ctx, dr)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClientActivityService_ExportActivities_AllListedBeforeDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	root := t.TempDir()
	ctx := context.Background()
	dr := testDateRange(1)

	svc := NewClientActivityService(connect, store.NewExportFileStore(root, logger.Nop()), nil, 1, &bytes.Buffer{}, logger.Nop())

	a := activitySummary(t, 1, "2024-03-01 06:00:00")
	lastPage := connect.EXPECT().ListActivities(ctx, dr, 1, 1).Return(nil, nil)
	gomock.InOrder(
		connect.EXPECT().ListActivities(ctx, dr, 0, 1).Return([]models.ActivitySummary{a}, nil),
		lastPage,
	)
	connect.EXPECT().GetActivityDocument(gomock.Any(), int64(1), gomock.Any()).Return(json.RawMessage(`{}`), nil).Times(3).After(lastPage)
	connect.EXPECT().DownloadActivity(gomock.Any(), int64(1), gomock.Any()).Return([]byte{1}, nil).Times(3).After(lastPage)

	_, err := svc.ExportActivities(ctx, dr)
	require.NoError(t, err)
}

func TestClientActivityService_ExportActivities_Journal(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	journal := mock.NewMockExportJournal(ctrl)
	root := t.TempDir()
	dr := testDateRange(1)
	ctx := utils.WithRunID(context.Background(), "run-1")

	svc := NewClientActivityService(connect, store.NewExportFileStore(root, logger.Nop()), journal, 20, &bytes.Buffer{}, logger.Nop())

	a := activitySummary(t, 55, "2024-03-01 06:00:00")
	connect.EXPECT().ListActivities(ctx, dr, 0, 20).Return([]models.ActivitySummary{a}, nil)
	connect.EXPECT().ListActivities(ctx, dr, 20, 20).Return(nil, nil)
	expectActivityDownloads(connect, 55)

	var recorded []models.ExportedFile
	journal.EXPECT().RecordFile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.ExportedFile) error {
			recorded = append(recorded, f)
			// Ошибка журнала не должна прерывать экспорт
			return errors.New("database is locked")
		},
	).Times(7)

	_, err := svc.ExportActivities(ctx, dr)
	require.NoError(t, err)

	require.Len(t, recorded, 7)
	categories := make([]string, 0, len(recorded))
	for _, f := range recorded {
		assert.Equal(t, "run-1", f.RunID)
		assert.Equal(t, "2024-03-01", f.CalendarDate)
		assert.Equal(t, int64(55), f.ActivityID)
		assert.NotEmpty(t, f.Checksum)
		assert.FileExists(t, f.Path)
		categories = append(categories, f.Category)
	}
	assert.Equal(t, []string{
		"activity", "activity_weather", "activity_hr-zones", "activity_details", "gpx", "tcx", "fit",
	}, categories)
}

func TestClientActivityService_ExportActivities_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	files := mock.NewMockExportFileStore(ctrl)
	ctx := context.Background()

	svc := NewClientActivityService(connect, files, nil, 20, &bytes.Buffer{}, logger.Nop())

	connect.EXPECT().ListActivities(ctx, gomock.Any(), 0, 20).
		Return(nil, fmt.Errorf("list: %w", adapter.ErrTooManyRequests))

	_, err := svc.ExportActivities(ctx, testDateRange(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.ErrorIs(t, err, adapter.ErrTooManyRequests)
}

func TestClientActivityService_ExportActivities_DownloadErrorStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	files := mock.NewMockExportFileStore(ctrl)
	ctx := context.Background()
	dr := testDateRange(1)

	svc := NewClientActivityService(connect, files, nil, 20, &bytes.Buffer{}, logger.Nop())

	a := activitySummary(t, 9, "2024-03-01 06:00:00")
	b := activitySummary(t, 10, "2024-03-01 09:00:00")
	connect.EXPECT().ListActivities(ctx, dr, 0, 20).Return([]models.ActivitySummary{a, b}, nil)
	connect.EXPECT().ListActivities(ctx, dr, 20, 20).Return(nil, nil)

	files.EXPECT().ActivityDir("2024-03-01", "9").Return("data/2024-03-01/activities/9")
	files.EXPECT().WriteJSON(ctx, "data/2024-03-01/activities/9", "9.json", a.Raw).Return(models.StoredFile{}, nil)
	connect.EXPECT().GetActivityDocument(ctx, int64(9), models.ActivityWeather).
		Return(nil, fmt.Errorf("weather: %w", adapter.ErrBadGateway))

	n, err := svc.ExportActivities(ctx, dr)
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrRemoteFailure)
	assert.Contains(t, err.Error(), "activity 9")
}

func TestClientActivityService_ExportActivities_BadStartTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	files := mock.NewMockExportFileStore(ctrl)
	ctx := context.Background()
	dr := testDateRange(1)

	svc := NewClientActivityService(connect, files, nil, 20, &bytes.Buffer{}, logger.Nop())

	connect.EXPECT().ListActivities(ctx, dr, 0, 20).Return([]models.ActivitySummary{{ActivityID: 3, StartTimeLocal: "2024"}}, nil)
	connect.EXPECT().ListActivities(ctx, dr, 20, 20).Return(nil, nil)

	_, err := svc.ExportActivities(ctx, dr)
	assert.ErrorIs(t, err, models.ErrInvalidActivity)
}

func TestClientActivityService_ExportActivities_StartTimeIsNotADate(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	ctx := context.Background()
	dr := testDateRange(1)

	parent := t.TempDir()
	root := filepath.Join(parent, "data")
	svc := NewClientActivityService(connect, store.NewExportFileStore(root, logger.Nop()), nil, 20, &bytes.Buffer{}, logger.Nop())

	connect.EXPECT().ListActivities(ctx, dr, 0, 20).
		Return([]models.ActivitySummary{{ActivityID: 3, StartTimeLocal: "../../x/2024-01-01 07:00"}}, nil)
	connect.EXPECT().ListActivities(ctx, dr, 20, 20).Return(nil, nil)

	_, err := svc.ExportActivities(ctx, dr)
	assert.ErrorIs(t, err, models.ErrInvalidActivity)

	// за пределами data ничего не создано
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClientActivityService_ExportActivities_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect := mock.NewMockConnectAdapter(ctrl)
	files := mock.NewMockExportFileStore(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	dr := testDateRange(1)

	svc := NewClientActivityService(connect, files, nil, 20, &bytes.Buffer{}, logger.Nop())

	a := activitySummary(t, 3, "2024-03-01 06:00:00")
	connect.EXPECT().ListActivities(ctx, dr, 0, 20).Return([]models.ActivitySummary{a}, nil)
	connect.EXPECT().ListActivities(ctx, dr, 20, 20).DoAndReturn(
		func(context.Context, models.DateRange, int, int) ([]models.ActivitySummary, error) {
			cancel()
			return nil, nil
		},
	)

	_, err := svc.ExportActivities(ctx, dr)
	assert.ErrorIs(t, err, ErrExportCancelled)
}
