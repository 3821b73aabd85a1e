// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyDate       = errors.New("date is required")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD form")
	ErrInvertedRange   = errors.New("end date is before start date")
	ErrDateInTheFuture = errors.New("start date is in the future")
)
