// Copyright (c) 2026 Cadenza. All rights reserved.

package auth

import (
	"context"
	"time"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]);
// an in-memory fake backs the service tests.
//
// All Find methods return [apperr.NotFound] for "no match" and
// [apperr.Internal] for infrastructural failures — callers rely on the
// distinction.
type UserRepository interface {
	// FindByID returns the account with the given primary key.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername returns the account with the given username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByToken returns the account whose stored token exactly equals token.
	FindByToken(ctx context.Context, token string) (*User, error)

	// Create persists a brand-new user account.
	//
	// Returns [apperr.Conflict] if the username is already taken (unique
	// constraint backstop).
	Create(ctx context.Context, user *User) error

	// UpdateToken replaces the user's stored token, invalidating the previous
	// one atomically. This is the only token mutation — there is no "add".
	UpdateToken(ctx context.Context, userID, token string) error
}

// TokenCache is a volatile token → user-id index in front of the repository.
//
// # Semantics
//
// The cache is an accelerator, never an authority: a hit must still be
// verified against the stored token, and any cache failure degrades to a
// repository lookup. Rotation deletes the old entry so a revoked token can
// never be served from cache.
type TokenCache interface {
	// Set associates a token with a user id for a limited duration.
	Set(ctx context.Context, token, userID string, ttl time.Duration) error

	// Get returns the user id for a token, or [apperr.NotFound] on a miss.
	Get(ctx context.Context, token string) (string, error)

	// Delete removes a token entry. Deleting an absent entry is not an error.
	Delete(ctx context.Context, token string) error
}
