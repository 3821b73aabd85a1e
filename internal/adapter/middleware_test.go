// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_TraceIDPerRequest(t *testing.T) {
	var (
		mu  sync.Mutex
		ids []string
	)

	r := chi.NewRouter()
	r.Get("/userprofile-service/socialProfile", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ids = append(ids, r.Header.Get(traceIDHeader))
		mu.Unlock()
		writeJSON(w, http.StatusOK, `{"displayName":"runner"}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newAuthedAdapter(t, srv.URL)
	for i := 0; i < 2; i++ {
		_, err := a.GetProfile(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, ids, 2)
	for _, id := range ids {
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "trace id должен быть UUID")
	}
	assert.NotEqual(t, ids[0], ids[1])
}
