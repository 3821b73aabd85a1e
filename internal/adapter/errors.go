// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrRefreshRejected marks a token endpoint that answered the refresh
	// grant with an error status, e.g. 400 invalid_grant for a revoked token.
	ErrRefreshRejected = errors.New("refresh token rejected")

	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoSession            = errors.New("no session token installed")
	ErrUnsupportedDocument  = errors.New("unsupported activity document")
)
