// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. The
// password is deliberately absent: it is read from the environment or asked
// for interactively.
type StructuredJSONConfig struct {
	App struct {
		Email    string `json:"email"`
		LogFile  string `json:"log_file"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url"`
		TokenURL       string   `json:"token_url"`
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		RequestTimeout Duration `json:"request_timeout"`
		PageSize       int      `json:"page_size"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DataDir    string `json:"data_dir"`
		TokenStore string `json:"token_store"`
		DB         struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Export struct {
		StartDate      string `json:"start_date"`
		EndDate        string `json:"end_date"`
		SkipActivities bool   `json:"skip_activities"`
		SkipHealth     bool   `json:"skip_health"`
		HistoryLimit   int    `json:"history_limit"`
	} `json:"export,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Email:    jsonCfg.App.Email,
			LogFile:  jsonCfg.App.LogFile,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Adapter: Adapter{
			APIURL:         jsonCfg.Adapter.APIURL,
			TokenURL:       jsonCfg.Adapter.TokenURL,
			ClientID:       jsonCfg.Adapter.ClientID,
			ClientSecret:   jsonCfg.Adapter.ClientSecret,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PageSize:       jsonCfg.Adapter.PageSize,
		},
		Storage: Storage{
			DataDir:    jsonCfg.Storage.DataDir,
			TokenStore: jsonCfg.Storage.TokenStore,
			DB:         DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Export: Export{
			StartDate:      jsonCfg.Export.StartDate,
			EndDate:        jsonCfg.Export.EndDate,
			SkipActivities: jsonCfg.Export.SkipActivities,
			SkipHealth:     jsonCfg.Export.SkipHealth,
			HistoryLimit:   jsonCfg.Export.HistoryLimit,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
