// Copyright (c) 2026 Cadenza. All rights reserved.

// Package sec provides cryptographic primitives and the resolved-identity type.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, token
// generation) from the domain logic. It is injected into the application
// layer via the hasher/generator interfaces defined there.
package sec

// Identity is the caller resolved from a bearer token.
//
// # Why here and not in the auth package?
//
// The middleware and context-utility packages need the type without importing
// the auth domain, which would create an import cycle.
type Identity struct {
	// UserID is the account's primary key.
	UserID string

	// Username is the account's unique, client-facing name.
	Username string

	// Token is the credential the caller presented, equality-matched against
	// the stored token during resolution.
	Token string
}
