// Copyright (c) 2026 Cadenza. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type.
//
// The resource name feeds the client-facing "not found" message; conflictMsg
// is used when the write tripped a unique constraint (the storage-level
// backstop for the check-then-act uniqueness window).
func Wrap(err error, resource, conflictMsg string) error {
	if err == nil {
		return nil
	}

	// 1. "No match" mapping — distinct from infrastructural failure.
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Unique-constraint violations at write time are business conflicts,
	// not server faults: two identical concurrent creates race past the
	// existence check and the loser lands here.
	if IsUniqueViolation(err) {
		return apperr.Conflict(conflictMsg)
	}

	// 3. Everything else is an internal server error.
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
