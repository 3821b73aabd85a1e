// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ExporterConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote client settings
	// (for example, missing API URL or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty data directory or token store).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidExportConfigs indicates an unusable date range: only one
	// bound given or a bound not in YYYY-MM-DD form.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
)
