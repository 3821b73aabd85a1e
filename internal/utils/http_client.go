// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/users")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTPClientFrom wraps an existing *http.Client. The transport of hc is
// kept, which is how an OAuth2-authorised client is plugged in: every request
// then carries a bearer token that is refreshed when it expires.
//
// A nil hc behaves like NewHTTPClient.
//
// Example usage:
//
//	client := utils.NewHTTPClientFrom(oauthCfg.Client(ctx, token))
func NewHTTPClientFrom(hc *http.Client) *HTTPClient {
	if hc == nil {
		return NewHTTPClient()
	}
	return &HTTPClient{Client: resty.NewWithClient(hc)}
}
