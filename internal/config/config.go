// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// exporter. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account credentials and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote service endpoints and HTTP client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the output directory, token store and journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Export holds the date range and which exports to run.
	Export Export `envPrefix:"EXPORT_"`

	// Mail and Password are the unprefixed credential variables, usually kept
	// in a .env file next to the binary. APP_EMAIL / APP_PASSWORD take
	// precedence.
	Mail     string `env:"MAIL"`
	Password string `env:"PASSWORD"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds account and logging settings.
type App struct {
	// Email is the account login.
	// Env: APP_EMAIL
	Email string `env:"EMAIL"`

	// Password is the account password. It is never accepted as a flag.
	// Env: APP_PASSWORD
	Password string `env:"PASSWORD"`

	// LogFile is where JSON log lines are appended. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound HTTP client.
type Adapter struct {
	// APIURL is the base URL of the connect API.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// TokenURL is the OAuth2 token endpoint used for the password grant and
	// for refreshing access tokens.
	// Env: ADAPTER_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// ClientID and ClientSecret identify this application to the token
	// endpoint.
	// Env: ADAPTER_CLIENT_ID, ADAPTER_CLIENT_SECRET
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// RequestTimeout bounds every single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the number of activities requested per search page.
	// Env: ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DataDir is the root of the exported tree (data/<date>/...).
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// TokenStore is the directory holding the cached session token.
	// Env: STORAGE_TOKEN_STORE
	TokenStore string `env:"TOKEN_STORE"`

	// DB holds the export journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite export journal settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Export holds what to export. When both dates are set the interactive date
// prompts are skipped.
type Export struct {
	// StartDate is the first day, YYYY-MM-DD.
	// Env: EXPORT_START_DATE
	StartDate string `env:"START_DATE"`

	// EndDate is the last day, YYYY-MM-DD, inclusive.
	// Env: EXPORT_END_DATE
	EndDate string `env:"END_DATE"`

	// SkipActivities disables the activities export.
	// Env: EXPORT_SKIP_ACTIVITIES
	SkipActivities bool `env:"SKIP_ACTIVITIES"`

	// SkipHealth disables the health and wellness export.
	// Env: EXPORT_SKIP_HEALTH
	SkipHealth bool `env:"SKIP_HEALTH"`

	// History prints the export journal and exits. Flag only.
	History bool

	// HistoryLimit caps the number of runs printed by -history.
	// Env: EXPORT_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// Built-in defaults, applied last and only to fields no other source set.
const (
	DefaultAPIURL         = "https://connectapi.garmin.com"
	DefaultTokenURL       = "https://connectapi.garmin.com/oauth-service/oauth/token"
	DefaultClientID       = "go-fit-exporter"
	DefaultRequestTimeout = 30 * time.Second
	DefaultPageSize       = 20
	DefaultDataDir        = "data"
	DefaultTokenStore     = ".garminconnect"
	DefaultDSN            = "exports.db"
	DefaultHistoryLimit   = 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:         DefaultAPIURL,
			TokenURL:       DefaultTokenURL,
			ClientID:       DefaultClientID,
			RequestTimeout: DefaultRequestTimeout,
			PageSize:       DefaultPageSize,
		},
		Storage: Storage{
			DataDir:    DefaultDataDir,
			TokenStore: DefaultTokenStore,
			DB:         DB{DSN: DefaultDSN},
		},
		Export: Export{HistoryLimit: DefaultHistoryLimit},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Command-line flags (args)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// GetExporterConfig builds the exporter view from the process arguments and
// environment. See [GetStructuredConfig] for the precedence rules.
func GetExporterConfig() (*ExporterConfig, error) {
	return getExporterConfig(os.Args[1:])
}
