// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/adapter"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/internal/validators"
	"github.com/MKhiriev/go-fit-exporter/models"
	"golang.org/x/oauth2"
)

type clientAuthService struct {
	sessions    store.SessionStore
	adapter     adapter.ConnectAdapter
	credentials CredentialSource
	validator   validators.Validator

	tokenStore string
	out        io.Writer
	now        func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(
	sessions store.SessionStore,
	connectAdapter adapter.ConnectAdapter,
	credentials CredentialSource,
	validator validators.Validator,
	tokenStore string,
	out io.Writer,
	logger *logger.Logger,
) AuthService {
	return &clientAuthService{
		sessions:    sessions,
		adapter:     connectAdapter,
		credentials: credentials,
		validator:   validator,
		tokenStore:  tokenStore,
		out:         out,
		now:         time.Now,
		logger:      logger,
	}
}

func (a *clientAuthService) AcquireSession(ctx context.Context) (models.Session, error) {
	fmt.Fprintf(a.out, "Trying to login using token data from '%s'...\n\n", a.tokenStore)

	session, err := a.restore(ctx)
	if err == nil {
		a.logger.Info().Str("display_name", session.Profile.DisplayName).Msg("session restored from token store")
		return session, nil
	}
	if !errors.Is(err, ErrSessionUnusable) {
		return models.Session{}, err
	}

	a.logger.Info().Err(err).Msg("falling back to credential login")
	fmt.Fprintf(a.out,
		"Login tokens not present, login with your credentials to generate them.\nThey will be stored in '%s' for future use.\n\n",
		a.tokenStore)

	return a.login(ctx)
}

// restore turns the cached token into a session. Every failure that a fresh
// login can fix is wrapped with ErrSessionUnusable.
func (a *clientAuthService) restore(ctx context.Context) (models.Session, error) {
	token, err := a.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrInvalidSessionToken) {
			a.discard(ctx)
		}
		if errors.Is(err, store.ErrLocalSessionNotFound) || errors.Is(err, store.ErrInvalidSessionToken) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrSessionUnusable, err)
		}
		return models.Session{}, fmt.Errorf("load session token: %w", err)
	}

	if a.expired(token) && token.RefreshToken == "" {
		return models.Session{}, fmt.Errorf("%w: token expired and no refresh token is cached", ErrSessionUnusable)
	}

	a.adapter.SetToken(token)

	profile, err := a.adapter.GetProfile(ctx)
	if err != nil {
		if sessionRejected(err) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrSessionUnusable, err)
		}
		return models.Session{}, fmt.Errorf("restore session: %w", mapAdapterError(err))
	}

	return models.Session{Token: token, Profile: profile}, nil
}

// sessionRejected reports whether the remote side answered the profile probe
// or the token refresh with a status that a new login can fix. Transport
// errors are not rejections.
func sessionRejected(err error) bool {
	return errors.Is(err, adapter.ErrRefreshRejected) ||
		errors.Is(err, adapter.ErrBadRequest) ||
		errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrForbidden)
}

// discard removes an unreadable token file so the next save starts clean.
func (a *clientAuthService) discard(ctx context.Context) {
	if err := a.sessions.Remove(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.discard").Msg("failed to remove unreadable session token")
	}
}

// expired reports whether the cached token is past its expiry. When the
// cache carries no expiry it is taken from the access token claims.
func (a *clientAuthService) expired(token *oauth2.Token) bool {
	if !token.Expiry.IsZero() {
		return token.Expiry.Before(a.now())
	}

	claims, err := utils.ParseAccessTokenClaims(token.AccessToken)
	if err != nil {
		if !errors.Is(err, utils.ErrNotJWT) {
			a.logger.Debug().Err(err).Msg("cached access token claims are unreadable")
		}
		return false
	}
	if claims.ExpiresAt != nil {
		token.Expiry = claims.ExpiresAt.Time
	}
	return claims.Expired(a.now())
}

func (a *clientAuthService) login(ctx context.Context) (models.Session, error) {
	credentials, err := a.credentials.Credentials(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("read credentials: %w", err)
	}
	if err = a.validator.Validate(ctx, credentials); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	token, err := a.adapter.Authenticate(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.login").Msg("authentication failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	if err = a.sessions.Save(ctx, token); err != nil {
		return models.Session{}, fmt.Errorf("save session token: %w", err)
	}

	profile, err := a.adapter.GetProfile(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("get profile: %w", mapAdapterError(err))
	}

	return models.Session{Token: token, Profile: profile}, nil
}

func (a *clientAuthService) PersistSession(ctx context.Context) error {
	token, err := a.adapter.Token()
	if err != nil {
		return fmt.Errorf("current session token: %w", mapAdapterError(err))
	}

	if err = a.sessions.Save(ctx, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}
