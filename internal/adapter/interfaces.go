// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-fit-exporter/models"
	"golang.org/x/oauth2"
)

// ConnectAdapter is the client-side contract for the remote fitness service.
//
// Every read operation returns the remote document unchanged: the exporter
// never transforms what it downloads. Requests other than Authenticate need a
// token installed with SetToken (or obtained by Authenticate).
type ConnectAdapter interface {
	// Authenticate exchanges credentials for a token (OAuth2 password grant)
	// and installs it for subsequent requests. Returns an error wrapping
	// [ErrAuthenticationFailed] when the service rejects the credentials.
	Authenticate(ctx context.Context, credentials models.Credentials) (*oauth2.Token, error)

	// SetToken installs a previously persisted token. Expired access tokens
	// are refreshed transparently when token carries a refresh token.
	SetToken(token *oauth2.Token)

	// Token returns the current token, refreshing it first if needed.
	// Returns [ErrNoSession] when no token was installed.
	Token() (*oauth2.Token, error)

	// GetProfile returns the social profile of the authenticated account.
	GetProfile(ctx context.Context) (models.Profile, error)

	// ListActivities returns one page of activities whose start date lies in
	// dateRange. start is the zero-based offset, limit the page size.
	ListActivities(ctx context.Context, dateRange models.DateRange, start, limit int) ([]models.ActivitySummary, error)

	// GetActivityDocument returns the weather, heart-rate zone or details
	// document of an activity. [models.ActivityRecord] is not a remote
	// document and yields [ErrUnsupportedDocument].
	GetActivityDocument(ctx context.Context, activityID int64, document models.ActivityDocument) (json.RawMessage, error)

	// DownloadActivity returns the activity file in the given format.
	DownloadActivity(ctx context.Context, activityID int64, format models.ActivityFormat) ([]byte, error)

	// GetHealth returns the daily document of category for date (YYYY-MM-DD).
	// For [models.HealthSummary] this is the daily user summary alone.
	GetHealth(ctx context.Context, displayName string, category models.HealthCategory, date string) (json.RawMessage, error)

	// GetBodyComposition returns the body composition report for date.
	GetBodyComposition(ctx context.Context, date string) (json.RawMessage, error)
}
