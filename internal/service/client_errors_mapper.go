// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-exporter/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrExportCancelled, err)
	case errors.Is(err, adapter.ErrRefreshRejected),
		errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrSessionUnusable, err)
	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
	}

	return err
}
