// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"log/slog"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/sec"
)

// Service implements the catalog use cases for all three levels of the
// hierarchy. Per-resource operations live in service_artist.go,
// service_album.go and service_song.go; this file carries the shared
// construction and guards.
//
// Every mutating operation follows the same sequence: validate the input,
// resolve the addressed chain, authorize the caller, check uniqueness or
// integrity, persist. The first failing step terminates the request.
type Service struct {
	store    Store
	resolver *Resolver
	logger   *slog.Logger
}

// NewService constructs a catalog [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		resolver: NewResolver(store),
		logger:   logger,
	}
}

// requireOwner authorizes a mutation of an owned record.
//
// The caller's identity was already resolved by the authentication
// middleware; this compares resolved IDs only and never re-reads the user.
func requireOwner(identity *sec.Identity, ownerID string) error {
	if identity == nil || identity.UserID != ownerID {
		return apperr.Forbidden("forbidden request")
	}
	return nil
}
