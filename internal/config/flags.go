// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the exporter command-line flags from args (without the
// program name).
//
// Flags:
//
//	-c/-config json file path with configs
//	-email account e-mail
//	-api-url connect API base URL
//	-token-url OAuth2 token endpoint
//	-client-id OAuth2 client id
//	-request-timeout per-request timeout (e.g., "30s", "1m")
//	-page-size activities per search page
//	-data-dir export root directory
//	-token-store session token directory
//	-db export journal SQLite file
//	-start first day YYYY-MM-DD
//	-end last day YYYY-MM-DD
//	-skip-activities do not export activities
//	-skip-health do not export health data
//	-history print the export journal and exit
//	-history-limit number of runs printed by -history
//	-log-file log file path
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("exporter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		jsonConfigPath string
		email          string
		apiURL         string
		tokenURL       string
		clientID       string
		requestTimeout time.Duration
		pageSize       int
		dataDir        string
		tokenStore     string
		dsn            string
		startDate      string
		endDate        string
		skipActivities bool
		skipHealth     bool
		history        bool
		historyLimit   int
		logFile        string
		logLevel       string
	)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&email, "email", "", "Account e-mail")
	fs.StringVar(&apiURL, "api-url", "", "Connect API base URL")
	fs.StringVar(&tokenURL, "token-url", "", "OAuth2 token endpoint")
	fs.StringVar(&clientID, "client-id", "", "OAuth2 client id")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "Activities per search page")
	fs.StringVar(&dataDir, "data-dir", "", "Export root directory")
	fs.StringVar(&tokenStore, "token-store", "", "Session token directory")
	fs.StringVar(&dsn, "db", "", "Export journal SQLite file")
	fs.StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	fs.StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	fs.BoolVar(&skipActivities, "skip-activities", false, "Do not export activities")
	fs.BoolVar(&skipHealth, "skip-health", false, "Do not export health and wellness data")
	fs.BoolVar(&history, "history", false, "Print the export journal and exit")
	fs.IntVar(&historyLimit, "history-limit", 0, "Number of runs printed by -history")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Email:    email,
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			TokenURL:       tokenURL,
			ClientID:       clientID,
			RequestTimeout: requestTimeout,
			PageSize:       pageSize,
		},
		Storage: Storage{
			DataDir:    dataDir,
			TokenStore: tokenStore,
			DB:         DB{DSN: dsn},
		},
		Export: Export{
			StartDate:      startDate,
			EndDate:        endDate,
			SkipActivities: skipActivities,
			SkipHealth:     skipHealth,
			History:        history,
			HistoryLimit:   historyLimit,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
