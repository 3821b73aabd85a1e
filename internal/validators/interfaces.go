// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the remote service:
// account credentials from the login form or environment, and the export
// date range from the prompts or configuration.
//
// [ExportValidator] accepts [models.Credentials] and [models.DateRange] by
// value or pointer. Field names ([FieldEmail], [FieldPassword],
// [FieldStartDate], [FieldEndDate]) restrict the check to part of a value.
package validators

import "context"

// Validator validates v, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
