// Copyright (c) 2026 Cadenza. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/canonical"
	"github.com/cadenza-music/cadenza/internal/platform/sec"
	"github.com/cadenza-music/cadenza/internal/platform/validate"
	"github.com/cadenza-music/cadenza/pkg/uuidv7"
)

// # Contracts & Types

// TokenSource defines the contract for minting opaque bearer tokens.
type TokenSource interface {
	// Issue returns a fresh unguessable token. The seed contributes entropy
	// but the result must not be derivable from it.
	Issue(seed string) (string, error)
}

// StandardTokenSource issues tokens via the sec package.
type StandardTokenSource struct{}

func (StandardTokenSource) Issue(seed string) (string, error) {
	return sec.GenerateToken(seed)
}

// Service implements account and session use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, token
// issuance, or resolution logic must be reviewed carefully.
type Service struct {
	users       UserRepository
	tokenCache  TokenCache
	tokenSource TokenSource
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(users UserRepository, tokenCache TokenCache, tokenSource TokenSource) *Service {
	return &Service{
		users:       users,
		tokenCache:  tokenCache,
		tokenSource: tokenSource,
	}
}

// Credentials holds the data for registration and authentication attempts.
type Credentials struct {
	Username string
	Password string
}

// validate enforces the shared credential rules for sign-up and login.
func (credentials Credentials) validate() error {
	presence := validate.New().
		Required(credentials.Username, "you must supply a username and password").
		Required(credentials.Password, "you must supply a username and password")
	if presence.HasErrors() {
		return presence.Err()
	}

	return validate.New().
		MaxLen("username", credentials.Username, canonical.MaxUsernameLen).
		Err()
}

// # Registration Flow

/*
SignUp validates, hashes, and persists a brand new user account.

The account is created with its first token already issued, so a client can
authenticate immediately after registering.

Returns Conflict if the username is taken, ValidationError on bad input.
*/
func (service *Service) SignUp(ctx context.Context, credentials Credentials) (*User, error) {
	if err := credentials.validate(); err != nil {
		return nil, err
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	// The unique index backstops this check under concurrency.
	_, err := service.users.FindByUsername(ctx, credentials.Username)
	if err == nil {
		return nil, apperr.Conflict("username already exists")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_signup_lookup_failed: %w", err)
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(credentials.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	token, err := service.tokenSource.Issue(credentials.Username)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Username:     credentials.Username,
		PasswordHash: hashedPassword,
		Token:        token,
	}

	if err := service.users.Create(ctx, user); err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_signup_failed: %w", err)
	}

	// Warm the cache as a best-effort side effect.
	_ = service.tokenCache.Set(ctx, token, user.ID, TokenCacheTTL)

	return user, nil
}

// # Authentication Flow

/*
VerifyCredentials checks a username/password pair and returns the account.

A failed lookup and a failed password check produce the same generic
Unauthorized message to prevent account enumeration.
*/
func (service *Service) VerifyCredentials(ctx context.Context, credentials Credentials) (*User, error) {
	if err := credentials.validate(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByUsername(ctx, credentials.Username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("invalid login credentials")
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("invalid login credentials")
	}

	return user, nil
}

/*
Login verifies credentials and rotates the account's token.

Rotation is the only way to mint a token after sign-up: the new token
replaces the old one in storage, and the old cache entry is purged so the
revoked token can never resolve again.
*/
func (service *Service) Login(ctx context.Context, credentials Credentials) (string, error) {
	user, err := service.VerifyCredentials(ctx, credentials)
	if err != nil {
		return "", err
	}

	token, err := service.tokenSource.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	if err := service.users.UpdateToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("auth_service_token_rotation_failed: %w", err)
	}

	// Purge the superseded token from the cache before advertising the new
	// one. Best-effort: a failed purge is caught by the re-verification on
	// the next cache hit.
	_ = service.tokenCache.Delete(ctx, user.Token)
	_ = service.tokenCache.Set(ctx, token, user.ID, TokenCacheTTL)

	return token, nil
}

// # Token Resolution

/*
ResolveToken maps an opaque bearer token to the identity that owns it.

The cache is consulted first, but a hit is always re-verified against the
token currently stored on the account; a stale entry (left over from a
rotation) is evicted and the token rejected. Cache failures degrade to a
direct repository lookup.

Returns Unauthorized for any token that does not exactly match a stored one.
*/
func (service *Service) ResolveToken(ctx context.Context, token string) (*sec.Identity, error) {
	if token == "" {
		return nil, apperr.Unauthorized("invalid token")
	}

	if userID, err := service.tokenCache.Get(ctx, token); err == nil {
		user, err := service.users.FindByID(ctx, userID)
		if err == nil && user.Token == token {
			return identityOf(user), nil
		}
		// Stale or orphaned entry: evict and fall through to storage.
		_ = service.tokenCache.Delete(ctx, token)
	}

	user, err := service.users.FindByToken(ctx, token)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("invalid token")
		}
		return nil, fmt.Errorf("auth_service_token_resolution_failed: %w", err)
	}

	_ = service.tokenCache.Set(ctx, token, user.ID, TokenCacheTTL)

	return identityOf(user), nil
}

func identityOf(user *User) *sec.Identity {
	return &sec.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Token:    user.Token,
	}
}
