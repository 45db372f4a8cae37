// Copyright (c) 2026 Cadenza. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-music/cadenza/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies hashing and verification agree.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "secret", hash) // never stored in plain text
	assert.True(t, sec.CheckPasswordHash("secret", hash))
	assert.False(t, sec.CheckPasswordHash("wrong", hash))
}

/*
TestHashPassword_DistinctSalts verifies two hashes of the same input differ.
*/
func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := sec.HashPassword("secret")
	require.NoError(t, err)
	second, err := sec.HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestGenerateToken verifies tokens are opaque, fixed-length and collision-free
per seed.
*/
func TestGenerateToken(t *testing.T) {
	first, err := sec.GenerateToken("alice")
	require.NoError(t, err)
	second, err := sec.GenerateToken("alice")
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second) // rotation must yield a fresh credential
	assert.NotContains(t, first, "alice")
}
