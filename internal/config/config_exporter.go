// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ExporterApp holds account and logging settings of the exporter.
type ExporterApp struct {
	// Email is the account login; may be empty, in which case it is asked
	// for interactively.
	Email string
	// Password is the account password; may be empty, in which case it is
	// asked for interactively.
	Password string
	// LogFile is the log destination.
	LogFile string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ExporterAdapter holds network settings used by the remote adapter.
type ExporterAdapter struct {
	APIURL         string
	TokenURL       string
	ClientID       string
	ClientSecret   string
	RequestTimeout time.Duration
	PageSize       int
}

// ExporterDB contains the export journal database settings.
type ExporterDB struct {
	// DSN is the SQLite file used for the export journal.
	DSN string
}

// ExporterStorage groups local storage settings.
type ExporterStorage struct {
	DataDir    string
	TokenStore string
	DB         ExporterDB
}

// ExporterRun describes what a single invocation does.
type ExporterRun struct {
	StartDate      string
	EndDate        string
	SkipActivities bool
	SkipHealth     bool
	History        bool
	HistoryLimit   int
}

// ExporterConfig is the top-level exporter configuration assembled from
// [StructuredConfig].
type ExporterConfig struct {
	App     ExporterApp
	Adapter ExporterAdapter
	Storage ExporterStorage
	Run     ExporterRun
}

func getExporterConfig(args []string) (*ExporterConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	exporterCfg := newExporterConfig(cfg)
	return exporterCfg, exporterCfg.validate()
}

func newExporterConfig(cfg *StructuredConfig) *ExporterConfig {
	email := cfg.App.Email
	if email == "" {
		email = cfg.Mail
	}
	password := cfg.App.Password
	if password == "" {
		password = cfg.Password
	}

	return &ExporterConfig{
		App: ExporterApp{
			Email:    email,
			Password: password,
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ExporterAdapter{
			APIURL:         cfg.Adapter.APIURL,
			TokenURL:       cfg.Adapter.TokenURL,
			ClientID:       cfg.Adapter.ClientID,
			ClientSecret:   cfg.Adapter.ClientSecret,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PageSize:       cfg.Adapter.PageSize,
		},
		Storage: ExporterStorage{
			DataDir:    cfg.Storage.DataDir,
			TokenStore: cfg.Storage.TokenStore,
			DB:         ExporterDB{DSN: cfg.Storage.DB.DSN},
		},
		Run: ExporterRun{
			StartDate:      cfg.Export.StartDate,
			EndDate:        cfg.Export.EndDate,
			SkipActivities: cfg.Export.SkipActivities,
			SkipHealth:     cfg.Export.SkipHealth,
			History:        cfg.Export.History,
			HistoryLimit:   cfg.Export.HistoryLimit,
		},
	}
}

// HasDateRange reports whether both dates were configured, so the
// interactive date prompts can be skipped.
func (cfg *ExporterConfig) HasDateRange() bool {
	return cfg.Run.StartDate != "" && cfg.Run.EndDate != ""
}
