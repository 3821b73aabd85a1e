// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSessionUnusable marks a cached session that cannot be restored and
	// must be replaced by a credential login.
	ErrSessionUnusable = errors.New("cached session is unusable")

	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoDisplayName        = errors.New("profile has no display name")

	ErrRateLimited     = errors.New("remote service rate limit reached")
	ErrRemoteRejected  = errors.New("remote service rejected the request")
	ErrRemoteNotFound  = errors.New("remote document not found")
	ErrRemoteFailure   = errors.New("remote service failure")
	ErrExportCancelled = errors.New("export cancelled")
)
