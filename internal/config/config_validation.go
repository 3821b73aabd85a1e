// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-exporter/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// source-independent invariants. Nothing is enforced at this level yet; the
// exporter view carries the real checks.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ExporterConfig) validate() error {
	if cfg.Adapter.APIURL == "" || cfg.Adapter.TokenURL == "" ||
		cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Storage.DataDir == "" || cfg.Storage.TokenStore == "" || cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	start, end := cfg.Run.StartDate, cfg.Run.EndDate
	if (start == "") != (end == "") {
		return fmt.Errorf("%w: both start and end dates are required", ErrInvalidExportConfigs)
	}
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(models.DateLayout, d); err != nil {
			return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidExportConfigs, d)
		}
	}

	return nil
}
