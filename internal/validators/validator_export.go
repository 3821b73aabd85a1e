// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-exporter/models"
)

const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

// ExportValidator checks user input of the exporter: credentials typed into
// the login form and the requested date range.
type ExportValidator struct {
	now func() time.Time
}

func NewExportValidator() Validator {
	return &ExportValidator{now: time.Now}
}

func (v *ExportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.DateRange:
		return v.validateDateRange(ctx, value, fields...)
	case *models.DateRange:
		return v.validateDateRange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ExportValidator) validateCredentials(ctx context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			email := strings.TrimSpace(c.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			at := strings.Index(email, "@")
			if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ExportValidator) validateDateRange(ctx context.Context, r models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStartDate, FieldEndDate}
	}

	for _, field := range fields {
		switch field {
		case FieldStartDate:
			if r.Start.IsZero() {
				return fmt.Errorf("%w: start", ErrEmptyDate)
			}
			// calendar dates are compared in the user's zone
			if r.Start.Format(models.DateLayout) > v.now().Format(models.DateLayout) {
				return ErrDateInTheFuture
			}
		case FieldEndDate:
			if r.End.IsZero() {
				return fmt.Errorf("%w: end", ErrEmptyDate)
			}
			if r.End.Before(r.Start) {
				return ErrInvertedRange
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// ParseDate parses a single YYYY-MM-DD value.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyDate
	}

	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// ParseDateRange parses both prompt answers and validates the resulting
// range with v.
func ParseDateRange(ctx context.Context, v Validator, start, end string) (models.DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("start date: %w", err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("end date: %w", err)
	}

	r := models.NewDateRange(s, e)
	if err = v.Validate(ctx, r); err != nil {
		return models.DateRange{}, err
	}
	return r, nil
}
