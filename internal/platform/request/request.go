// Copyright (c) 2026 Cadenza. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/ctxutil"
	"github.com/cadenza-music/cadenza/internal/platform/sec"
	"github.com/cadenza-music/cadenza/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// An empty body is treated as an empty object, leaving the target at its
// zero value; field-level validation decides whether that is acceptable.
// Returns validate.ErrInvalidJSON if decoding fails.
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// RequiredIdentity ensures the request is authenticated and returns the
// caller's identity, or apperr.Unauthorized if it is not.
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {
	identity := ctxutil.GetAuthUser(request.Context())
	if identity == nil {
		return nil, apperr.Unauthorized("invalid token")
	}
	return identity, nil
}
