// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

const (
	detailsMaxChartSize    = "2000"
	detailsMaxPolylineSize = "4000"
	sleepNonSleepBuffer    = "60"
	restingHRMetricID      = "60"
)

type httpConnectAdapter struct {
	oauth     *oauth2.Config
	baseURL   string
	timeout   time.Duration
	userAgent string

	mu     sync.RWMutex
	source oauth2.TokenSource
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConnectAdapter constructs the resty implementation of [ConnectAdapter].
// It normalises and validates the API and token URLs from adapterCfg and
// prepares the OAuth2 client configuration. No request is made until
// Authenticate or SetToken is called.
//
// Returns an error if either URL is empty or cannot be parsed.
func NewHTTPConnectAdapter(adapterCfg config.ExporterAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (ConnectAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}
	tokenURL, err := normalizeBaseURL(adapterCfg.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter token url: %w", err)
	}

	return &httpConnectAdapter{
		oauth: &oauth2.Config{
			ClientID:     adapterCfg.ClientID,
			ClientSecret: adapterCfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		baseURL:   baseURL,
		timeout:   adapterCfg.RequestTimeout,
		userAgent: buildInfo.UserAgent(),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// oauthContext carries the HTTP client used for token endpoint calls.
func (h *httpConnectAdapter) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: h.timeout})
}

// Authenticate implements [ConnectAdapter]. It performs the resource-owner
// password grant against the configured token URL and installs the returned
// token. Rejections by the token endpoint are mapped to the status sentinel
// errors and wrapped with [ErrAuthenticationFailed].
func (h *httpConnectAdapter) Authenticate(ctx context.Context, credentials models.Credentials) (*oauth2.Token, error) {
	token, err := h.oauth.PasswordCredentialsToken(h.oauthContext(ctx), credentials.Email, credentials.Password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			err = mapStatus(retrieveErr.Response.StatusCode, string(retrieveErr.Body))
		}
		h.logger.Err(err).Str("func", "httpConnectAdapter.Authenticate").Msg("password grant rejected")
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	h.SetToken(token)
	return token, nil
}

// SetToken implements [ConnectAdapter]. It wraps token into a reusable token
// source and rebuilds the resty client on top of an OAuth2 transport, so every
// request carries the current bearer token.
func (h *httpConnectAdapter) SetToken(token *oauth2.Token) {
	source := h.oauth.TokenSource(h.oauthContext(context.Background()), token)
	source = oauth2.ReuseTokenSource(token, source)

	client := utils.NewHTTPClientFrom(&http.Client{
		Transport: &oauth2.Transport{Source: source, Base: http.DefaultTransport},
	})
	client.
		SetBaseURL(h.baseURL).
		SetTimeout(h.timeout).
		SetHeader("User-Agent", h.userAgent).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(h.withTraceID).
		OnAfterResponse(h.withLogging)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.source = source
	h.client = client
}

// Token implements [ConnectAdapter].
func (h *httpConnectAdapter) Token() (*oauth2.Token, error) {
	h.mu.RLock()
	source := h.source
	h.mu.RUnlock()

	if source == nil {
		return nil, ErrNoSession
	}
	token, err := source.Token()
	if err != nil {
		return nil, mapRequestError("token", err)
	}
	return token, nil
}

// GetProfile implements [ConnectAdapter]. It GETs
// /userprofile-service/socialProfile.
func (h *httpConnectAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	resp, err := req.SetResult(&profile).Get("/userprofile-service/socialProfile")
	if err != nil {
		return models.Profile{}, mapRequestError("get profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// ListActivities implements [ConnectAdapter]. It GETs
// /activitylist-service/activities/search/activities.
func (h *httpConnectAdapter) ListActivities(ctx context.Context, dateRange models.DateRange, start, limit int) ([]models.ActivitySummary, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParams(map[string]string{
			"startDate": dateRange.StartString(),
			"endDate":   dateRange.EndString(),
			"start":     strconv.Itoa(start),
			"limit":     strconv.Itoa(limit),
		}).
		Get("/activitylist-service/activities/search/activities")
	if err != nil {
		return nil, mapRequestError("list activities", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var activities []models.ActivitySummary
	if err = json.Unmarshal(resp.Body(), &activities); err != nil {
		return nil, fmt.Errorf("decode activities response: %w", err)
	}
	return activities, nil
}

// GetActivityDocument implements [ConnectAdapter].
func (h *httpConnectAdapter) GetActivityDocument(ctx context.Context, activityID int64, document models.ActivityDocument) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetPathParam("id", strconv.FormatInt(activityID, 10))

	var path string
	switch document {
	case models.ActivityWeather:
		path = "/activity-service/activity/{id}/weather"
	case models.ActivityHRZones:
		path = "/activity-service/activity/{id}/hrTimeInZones"
	case models.ActivityDetails:
		path = "/activity-service/activity/{id}/details"
		req.SetQueryParams(map[string]string{
			"maxChartSize":    detailsMaxChartSize,
			"maxPolylineSize": detailsMaxPolylineSize,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDocument, string(document))
	}

	return h.getJSON(req, path, "get activity document")
}

// DownloadActivity implements [ConnectAdapter]. GPX and TCX come from the
// export endpoints, the original upload from the files endpoint.
func (h *httpConnectAdapter) DownloadActivity(ctx context.Context, activityID int64, format models.ActivityFormat) ([]byte, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var path string
	switch format {
	case models.GPX:
		path = "/download-service/export/gpx/activity/{id}"
	case models.TCX:
		path = "/download-service/export/tcx/activity/{id}"
	case models.Original:
		path = "/download-service/files/activity/{id}"
	default:
		return nil, fmt.Errorf("unsupported download format %s", format)
	}

	resp, err := req.
		SetHeader("Accept", "*/*").
		SetPathParam("id", strconv.FormatInt(activityID, 10)).
		Get(path)
	if err != nil {
		return nil, mapRequestError("download activity", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// GetHealth implements [ConnectAdapter].
func (h *httpConnectAdapter) GetHealth(ctx context.Context, displayName string, category models.HealthCategory, date string) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetPathParams(map[string]string{"displayName": displayName, "date": date})

	var path string
	switch category {
	case models.HealthSummary:
		path = "/usersummary-service/usersummary/daily/{displayName}"
		req.SetQueryParam("calendarDate", date)
	case models.HealthSteps:
		path = "/wellness-service/wellness/dailySummaryChart/{displayName}"
		req.SetQueryParam("date", date)
	case models.HealthHeartRate:
		path = "/wellness-service/wellness/dailyHeartRate/{displayName}"
		req.SetQueryParam("date", date)
	case models.HealthBodyBattery:
		path = "/wellness-service/wellness/bodyBattery/reports/daily"
		req.SetQueryParams(map[string]string{"startDate": date, "endDate": date})
	case models.HealthFloors:
		path = "/wellness-service/wellness/floorsChartData/daily/{date}"
	case models.HealthRestingHR:
		path = "/userstats-service/wellness/daily/{displayName}"
		req.SetQueryParams(map[string]string{
			"fromDate":  date,
			"untilDate": date,
			"metricId":  restingHRMetricID,
		})
	case models.HealthSleep:
		path = "/wellness-service/wellness/dailySleepData/{displayName}"
		req.SetQueryParams(map[string]string{
			"date":                  date,
			"nonSleepBufferMinutes": sleepNonSleepBuffer,
		})
	case models.HealthStress:
		path = "/wellness-service/wellness/dailyStress/{date}"
	case models.HealthRespiration:
		path = "/wellness-service/wellness/daily/respiration/{date}"
	case models.HealthSpO2:
		path = "/wellness-service/wellness/daily/spo2/{date}"
	case models.HealthMaxMetrics:
		path = "/metrics-service/metrics/maxmet/daily/{date}/{date}"
	default:
		return nil, fmt.Errorf("unsupported health category %q", string(category))
	}

	return h.getJSON(req, path, "get health "+string(category))
}

// GetBodyComposition implements [ConnectAdapter]. It GETs
// /weight-service/weight/dateRange for a single day.
func (h *httpConnectAdapter) GetBodyComposition(ctx context.Context, date string) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetQueryParams(map[string]string{"startDate": date, "endDate": date})

	return h.getJSON(req, "/weight-service/weight/dateRange", "get body composition")
}

// getJSON performs req and returns the body as a JSON document. An empty body
// is returned as JSON null.
func (h *httpConnectAdapter) getJSON(req *resty.Request, path, op string) (json.RawMessage, error) {
	resp, err := req.Get(path)
	if err != nil {
		return nil, mapRequestError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: response is not valid JSON", op)
	}
	return json.RawMessage(body), nil
}

func (h *httpConnectAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	client := h.client
	h.mu.RUnlock()

	if client == nil {
		return nil, ErrNoSession
	}
	return client.R().SetContext(ctx), nil
}
