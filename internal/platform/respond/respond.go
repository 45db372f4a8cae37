// Copyright (c) 2026 Cadenza. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. Every
// notice (success message or error) follows the same `{code, message}`
// envelope; resource reads are serialized as plain resource JSON. The
// consistency is what lets clients parse outcomes without sniffing shapes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/ctxutil"
)

// Notice is the JSON envelope for success messages and all errors.
type Notice struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Success writes a notice envelope with the given status and message.
//
// Used by mutating operations whose result is an acknowledgement rather than
// a resource representation (e.g. "artist successfully created").
func Success(writer http.ResponseWriter, statusCode int, message string) {
	JSON(writer, statusCode, Notice{Code: statusCode, Message: message})
}

// Error converts any Go error into a standardized JSON API error response.
//
// Non-AppError values and 5xx statuses are logged with their cause; the client
// only ever sees the envelope.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("kind", appError.Kind),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, Notice{
		Code:    appError.HTTPStatus,
		Message: appError.Message,
	})
}
