// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Session is an authenticated handle: the OAuth2 token used on every request
// and the profile of the account it belongs to.
type Session struct {
	// Token is the cached credential artifact. It is persisted to the token
	// store so that later runs can skip the credential login.
	Token *oauth2.Token

	// Profile is fetched right after login or restore; DisplayName is part of
	// several wellness endpoint paths.
	Profile Profile
}

// Profile is the subset of the remote social profile the exporter needs.
type Profile struct {
	ProfileID   int64  `json:"profileId"`
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
}

// AccessTokenClaims is the claim set carried by the service's access tokens.
// The exporter never verifies the signature (it does not own the key); the
// claims are only read to find out whether a cached token is still usable.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
}

// Expired reports whether the token expiry lies before now. A token without an
// "exp" claim is treated as not expired.
func (c AccessTokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.Before(now)
}
