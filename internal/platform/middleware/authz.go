// Copyright (c) 2026 Cadenza. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/constants"
	"github.com/cadenza-music/cadenza/internal/platform/ctxutil"
	"github.com/cadenza-music/cadenza/internal/platform/respond"
	"github.com/cadenza-music/cadenza/internal/platform/sec"
)

// TokenResolver resolves an opaque bearer token to the account that owns it.
//
// # Why an interface?
//
// Defining TokenResolver here decouples the middleware from the auth service
// implementation, allowing us to easily inject stubs during unit testing.
//
// Implementations return [apperr.Unauthorized] when no stored token matches
// and [apperr.Internal] when the lookup itself fails — the distinction decides
// whether the client sees 401 or 500.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*sec.Identity, error)
}

// Authenticate extracts the bearer token from the Authorization header and
// resolves the caller's identity.
//
// # Flow
//  1. Read the 'Authorization: <scheme> <token>' header.
//  2. Split on whitespace and discard the scheme — only the token matters.
//  3. Resolve the token to a stored user via [TokenResolver].
//  4. Inject [*sec.Identity] into the request context for downstream use.
//
// Routes that allow anonymous access must not mount this middleware; guarded
// routes mount it together with [RequireAuth].
func Authenticate(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Fields(authHeader)
			if len(parts) != 2 {
				respond.Error(writer, request, apperr.Unauthorized("invalid token"))
				return
			}

			// ── 3. Token Resolution ───────────────────────────────────────────
			// The scheme (parts[0]) is deliberately ignored; validity is decided
			// solely by equality against a stored token.
			identity, err := resolver.ResolveToken(request.Context(), parts[1])
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetAuthUser(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("invalid token"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
