// Copyright (c) 2026 Cadenza. All rights reserved.

package auth

import "time"

const (
	// TokenCacheTTL bounds how long a token → user-id entry may live in the
	// cache. Entries are re-verified against the stored token on every hit,
	// so the TTL only caps memory, not validity.
	TokenCacheTTL = 30 * time.Minute
)
