// Copyright (c) 2026 Cadenza. All rights reserved.

// Package auth owns user accounts and bearer-token authentication for Cadenza.
//
// # Architecture
//
// The entity carries the security invariant of the whole API: a user has
// exactly one valid token at any time. Issuing a new token replaces the old
// one, which instantly revokes every credential issued before it.
package auth

import (
	"time"
)

// User represents a registered account.
//
// # Rules
//   - Username is unique, at most 20 characters.
//   - PasswordHash is generated via bcrypt exclusively by the Service.
//   - Token is the single active bearer credential. It is stored in plain
//     form and equality-matched against the Authorization header remainder.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Token        string    `json:"-"` // Credentials are returned only by the auth endpoints.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
