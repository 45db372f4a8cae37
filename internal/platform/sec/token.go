// Copyright (c) 2026 Cadenza. All rights reserved.

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// tokenEntropyBytes is the number of random bytes mixed into each token.
const tokenEntropyBytes = 32

// GenerateToken produces an opaque, collision-resistant bearer token.
//
// # Construction
//
// The token is hex(SHA-256(seed || 32 random bytes)). The seed (typically the
// username) makes tokens attributable during debugging without being
// recoverable; the random bytes make them unguessable. The result is a fixed
// 64-character hex string with no embedded claims or expiry — validity is
// decided solely by equality against the token stored on the user row.
func GenerateToken(seed string) (string, error) {
	entropy := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("sec: failed to read entropy: %w", err)
	}

	digest := sha256.New()
	digest.Write([]byte(seed))
	digest.Write(entropy)

	return hex.EncodeToString(digest.Sum(nil)), nil
}
