// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), string(resp.Body()))
}

func mapStatus(statusCode int, body string) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	body = strings.TrimSpace(body)

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(statusCode)
		}
		return fmt.Errorf("http %d: %s", statusCode, body)
	}
}

// mapRequestError wraps a transport-level failure. A failed token refresh
// surfaces here as *oauth2.RetrieveError and is wrapped with
// [ErrRefreshRejected] plus the status sentinel, so callers can tell a revoked
// session from a network problem.
func mapRequestError(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		statusErr := mapStatus(retrieveErr.Response.StatusCode, string(retrieveErr.Body))
		if statusErr == nil {
			statusErr = retrieveErr
		}
		return fmt.Errorf("%s: %w: %w", op, ErrRefreshRejected, statusErr)
	}
	return fmt.Errorf("%s request: %w", op, err)
}
