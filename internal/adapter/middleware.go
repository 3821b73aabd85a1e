// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every outgoing request with a fresh trace id unless the
// caller already set one.
func (h *httpConnectAdapter) withTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(traceIDHeader) == "" {
		req.SetHeader(traceIDHeader, uuid.NewString())
	}
	return nil
}

// withLogging writes one log line per completed request.
func (h *httpConnectAdapter) withLogging(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request

	h.logger.Info().
		Str("trace_id", req.Header.Get(traceIDHeader)).
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int64("size", resp.Size()).
		Send()
	return nil
}
