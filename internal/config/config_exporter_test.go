// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExporterConfig() *ExporterConfig {
	return newExporterConfig(defaultConfig())
}

func TestNewExporterConfig_CredentialFallback(t *testing.T) {
	cfg := newExporterConfig(&StructuredConfig{Mail: "legacy@example.com", Password: "legacy"})
	assert.Equal(t, "legacy@example.com", cfg.App.Email)
	assert.Equal(t, "legacy", cfg.App.Password)

	cfg = newExporterConfig(&StructuredConfig{
		App:      App{Email: "app@example.com", Password: "app"},
		Mail:     "legacy@example.com",
		Password: "legacy",
	})
	assert.Equal(t, "app@example.com", cfg.App.Email)
	assert.Equal(t, "app", cfg.App.Password)
}

func TestExporterConfig_Validate_Defaults(t *testing.T) {
	assert.NoError(t, validExporterConfig().validate())
}

func TestExporterConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *ExporterConfig)
		want   error
	}{
		{"empty api url", func(c *ExporterConfig) { c.Adapter.APIURL = "" }, ErrInvalidAdapterConfigs},
		{"empty token url", func(c *ExporterConfig) { c.Adapter.TokenURL = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ExporterConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero page size", func(c *ExporterConfig) { c.Adapter.PageSize = 0 }, ErrInvalidAdapterConfigs},
		{"empty data dir", func(c *ExporterConfig) { c.Storage.DataDir = "" }, ErrInvalidStorageConfigs},
		{"empty token store", func(c *ExporterConfig) { c.Storage.TokenStore = "" }, ErrInvalidStorageConfigs},
		{"empty dsn", func(c *ExporterConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"only start", func(c *ExporterConfig) { c.Run.StartDate = "2024-01-01" }, ErrInvalidExportConfigs},
		{"only end", func(c *ExporterConfig) { c.Run.EndDate = "2024-01-01" }, ErrInvalidExportConfigs},
		{"bad start", func(c *ExporterConfig) {
			c.Run.StartDate = "01/01/2024"
			c.Run.EndDate = "2024-01-02"
		}, ErrInvalidExportConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validExporterConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestExporterConfig_HasDateRange(t *testing.T) {
	cfg := validExporterConfig()
	assert.False(t, cfg.HasDateRange())

	cfg.Run.StartDate = "2024-01-01"
	cfg.Run.EndDate = "2024-01-02"
	require.NoError(t, cfg.validate())
	assert.True(t, cfg.HasDateRange())
}

func TestGetExporterConfig_FromArgs(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("MAIL", "legacy@example.com")

	cfg, err := getExporterConfig([]string{"-start", "2024-03-01", "-end", "2024-03-03"})

	require.NoError(t, err)
	assert.Equal(t, "legacy@example.com", cfg.App.Email)
	assert.Equal(t, DefaultDataDir, cfg.Storage.DataDir)
	assert.True(t, cfg.HasDateRange())
}
