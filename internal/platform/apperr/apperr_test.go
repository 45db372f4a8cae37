// Copyright (c) 2026 Cadenza. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
)

/*
TestConstructors_StatusMapping verifies each taxonomy kind maps to its HTTP status.
*/
func TestConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		kind   string
		status int
	}{
		{"validation", apperr.ValidationError("artist must be at most 50 characters"), apperr.KindValidation, http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("invalid token"), apperr.KindUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("forbidden request"), apperr.KindForbidden, http.StatusForbidden},
		{"not_found", apperr.NotFound("artist"), apperr.KindNotFound, http.StatusNotFound},
		{"conflict", apperr.Conflict("artist already exists"), apperr.KindConflict, http.StatusConflict},
		{"internal", apperr.Internal(errors.New("boom")), apperr.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

/*
TestNotFound_Message verifies the unified "<resource> not found" wording.
*/
func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "artist not found", apperr.NotFound("artist").Error())
	assert.Equal(t, "album not found", apperr.NotFound("album").Error())
}

/*
TestInternal_CauseChain verifies the cause is unwrappable but never part of the message.
*/
func TestInternal_CauseChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal(cause)

	assert.Equal(t, "internal server error", err.Error())
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_WrappedChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.Conflict("album already exists"))

	require.True(t, apperr.IsAppError(wrapped))
	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindConflict, ae.Kind)

	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestIsNotFound distinguishes absence from other failures.
*/
func TestIsNotFound(t *testing.T) {
	assert.True(t, apperr.IsNotFound(apperr.NotFound("song")))
	assert.True(t, apperr.IsNotFound(fmt.Errorf("resolve: %w", apperr.NotFound("song"))))
	assert.False(t, apperr.IsNotFound(apperr.Internal(errors.New("down"))))
	assert.False(t, apperr.IsNotFound(nil))
}
