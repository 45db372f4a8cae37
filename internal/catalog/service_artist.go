// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/canonical"
	"github.com/cadenza-music/cadenza/internal/platform/sec"
	"github.com/cadenza-music/cadenza/pkg/uuidv7"
)

// ListArtists returns every artist, rendered without their albums.
func (service *Service) ListArtists(ctx context.Context) ([]ArtistView, error) {
	artists, err := service.store.ListArtists(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ArtistView, 0, len(artists))
	for _, artist := range artists {
		views = append(views, NewArtistView(artist, nil))
	}

	return views, nil
}

// GetArtist returns one artist with its albums.
func (service *Service) GetArtist(ctx context.Context, name string) (ArtistView, error) {
	artist, err := service.resolver.Artist(ctx, name)
	if err != nil {
		return ArtistView{}, err
	}

	albums, err := service.store.ListAlbums(ctx, artist.ID)
	if err != nil {
		return ArtistView{}, err
	}

	albumViews := make([]AlbumView, 0, len(albums))
	for _, album := range albums {
		albumViews = append(albumViews, NewAlbumView(album, nil))
	}

	return NewArtistView(artist, albumViews), nil
}

// CreateArtist registers a new artist owned by the caller.
//
// Any authenticated user may create artists; ownership only gates later
// mutations of the record.
func (service *Service) CreateArtist(ctx context.Context, identity *sec.Identity, rawName string) error {
	name, err := canonical.Name(rawName, "artist")
	if err != nil {
		return err
	}

	_, err = service.store.FindArtistByName(ctx, name)
	if err == nil {
		return apperr.Conflict("artist already exists")
	}
	if !apperr.IsNotFound(err) {
		return fmt.Errorf("catalog_artist_lookup_failed: %w", err)
	}

	artist := &Artist{
		ID:     uuidv7.New(),
		Name:   name,
		UserID: identity.UserID,
	}
	if err := service.store.CreateArtist(ctx, artist); err != nil {
		return err
	}

	service.logger.Info("artist_created",
		slog.String("name", artist.Name),
		slog.String("user_id", identity.UserID),
	)
	return nil
}

// RenameArtist changes an artist's canonical name.
func (service *Service) RenameArtist(ctx context.Context, identity *sec.Identity, currentName, rawNewName string) error {
	newName, err := canonical.Name(rawNewName, "artist")
	if err != nil {
		return err
	}
	if newName == canonical.Key(currentName) {
		return apperr.ValidationError("you must provide a new artist")
	}

	artist, err := service.resolver.Artist(ctx, currentName)
	if err != nil {
		return err
	}
	if err := requireOwner(identity, artist.UserID); err != nil {
		return err
	}

	_, err = service.store.FindArtistByName(ctx, newName)
	if err == nil {
		return apperr.Conflict("new artist already exists")
	}
	if !apperr.IsNotFound(err) {
		return fmt.Errorf("catalog_artist_lookup_failed: %w", err)
	}

	if err := service.store.RenameArtist(ctx, artist.ID, newName); err != nil {
		return err
	}

	service.logger.Info("artist_renamed",
		slog.String("from", artist.Name),
		slog.String("to", newName),
	)
	return nil
}

// DeleteArtist removes an artist, provided nothing references it.
func (service *Service) DeleteArtist(ctx context.Context, identity *sec.Identity, name string) error {
	artist, err := service.resolver.Artist(ctx, name)
	if err != nil {
		return err
	}
	if err := requireOwner(identity, artist.UserID); err != nil {
		return err
	}

	hasDependents, err := service.store.ArtistHasDependents(ctx, artist.ID)
	if err != nil {
		return err
	}
	if hasDependents {
		return apperr.Forbidden("artist still has songs/albums")
	}

	if err := service.store.DeleteArtist(ctx, artist.ID); err != nil {
		return err
	}

	service.logger.Warn("artist_deleted", slog.String("name", artist.Name))
	return nil
}
