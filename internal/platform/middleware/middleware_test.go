// Copyright (c) 2026 Cadenza. All rights reserved.

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-music/cadenza/internal/platform/constants"
	"github.com/cadenza-music/cadenza/internal/platform/middleware"
)

/*
TestRateLimit_BurstOverflow verifies the bucket admits the configured burst and
rejects the overflow with the standard 429 envelope.
*/
func TestRateLimit_BurstOverflow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	// A dedicated IP so other tests never share this bucket.
	const clientIP = "203.0.113.77"

	send := func() *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/artists", nil)
		request.Header.Set(constants.HeaderXRealIP, clientIP)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	for i := 0; i < constants.DefaultRateLimitBurst; i++ {
		assert.Equal(t, http.StatusOK, send().Code)
	}

	recorder := send()
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.EqualValues(t, http.StatusTooManyRequests, envelope["code"])
	assert.Equal(t, "rate limit exceeded", envelope["message"])
}

/*
TestRateLimit_IsolatesClients verifies one client's overflow never throttles another.
*/
func TestRateLimit_IsolatesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/artists", nil)
		request.Header.Set(constants.HeaderXRealIP, ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	for i := 0; i <= constants.DefaultRateLimitBurst; i++ {
		send("203.0.113.101")
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.102"))
}
