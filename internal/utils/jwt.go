// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when an access token is not a JWT. Opaque tokens are
// valid for the remote service; the caller then relies on the expiry stored
// next to the token instead.
var ErrNotJWT = errors.New("access token is not a JWT")

// ParseAccessTokenClaims reads the claims of a cached access token without
// verifying its signature.
//
// The exporter does not own the signing key, so the claims are only used to
// decide early whether a cached token is still worth sending. The remote
// service remains the authority on validity.
//
// Example usage:
//
//	claims, err := utils.ParseAccessTokenClaims(tok.AccessToken)
//	if err == nil && claims.Expired(time.Now()) {
//	    // refresh or log in again
//	}
func ParseAccessTokenClaims(accessToken string) (models.AccessTokenClaims, error) {
	accessToken = strings.TrimSpace(accessToken)
	if strings.Count(accessToken, ".") != 2 {
		return models.AccessTokenClaims{}, ErrNotJWT
	}

	claims := models.AccessTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return models.AccessTokenClaims{}, fmt.Errorf("error parsing access token claims: %w", err)
	}

	return claims, nil
}
