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

// ListAlbums returns an artist's albums, rendered without their songs.
func (service *Service) ListAlbums(ctx context.Context, artistName string) ([]AlbumView, error) {
	artist, err := service.resolver.Artist(ctx, artistName)
	if err != nil {
		return nil, err
	}

	albums, err := service.store.ListAlbums(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	views := make([]AlbumView, 0, len(albums))
	for _, album := range albums {
		views = append(views, NewAlbumView(album, nil))
	}

	return views, nil
}

// GetAlbum returns one album with its songs.
func (service *Service) GetAlbum(ctx context.Context, artistName, albumName string) (AlbumView, error) {
	_, album, err := service.resolver.Album(ctx, artistName, albumName)
	if err != nil {
		return AlbumView{}, err
	}

	songs, err := service.store.ListSongs(ctx, album.ArtistID, album.ID)
	if err != nil {
		return AlbumView{}, err
	}

	songViews := make([]SongView, 0, len(songs))
	for _, song := range songs {
		songViews = append(songViews, NewSongView(song))
	}

	return NewAlbumView(album, songViews), nil
}

// CreateAlbum adds an album under an existing artist, owned by the caller.
//
// The artist's owner has no say here: albums are owned by whoever created
// them, independently of who owns the artist.
func (service *Service) CreateAlbum(ctx context.Context, identity *sec.Identity, artistName, rawName string) error {
	name, err := canonical.Name(rawName, "album")
	if err != nil {
		return err
	}

	artist, err := service.resolver.Artist(ctx, artistName)
	if err != nil {
		return err
	}

	_, err = service.store.FindAlbumByName(ctx, artist.ID, name)
	if err == nil {
		return apperr.Conflict("album already exists")
	}
	if !apperr.IsNotFound(err) {
		return fmt.Errorf("catalog_album_lookup_failed: %w", err)
	}

	album := &Album{
		ID:       uuidv7.New(),
		Name:     name,
		UserID:   identity.UserID,
		ArtistID: artist.ID,
	}
	if err := service.store.CreateAlbum(ctx, album); err != nil {
		return err
	}

	service.logger.Info("album_created",
		slog.String("artist", artist.Name),
		slog.String("name", album.Name),
		slog.String("user_id", identity.UserID),
	)
	return nil
}

// RenameAlbum changes an album's canonical name within its artist.
func (service *Service) RenameAlbum(ctx context.Context, identity *sec.Identity, artistName, currentName, rawNewName string) error {
	newName, err := canonical.Name(rawNewName, "album")
	if err != nil {
		return err
	}
	if newName == canonical.Key(currentName) {
		return apperr.ValidationError("you must provide a new album")
	}

	artist, album, err := service.resolver.Album(ctx, artistName, currentName)
	if err != nil {
		return err
	}
	if err := requireOwner(identity, album.UserID); err != nil {
		return err
	}

	_, err = service.store.FindAlbumByName(ctx, artist.ID, newName)
	if err == nil {
		return apperr.Conflict("new album already exists")
	}
	if !apperr.IsNotFound(err) {
		return fmt.Errorf("catalog_album_lookup_failed: %w", err)
	}

	if err := service.store.RenameAlbum(ctx, album.ID, newName); err != nil {
		return err
	}

	service.logger.Info("album_renamed",
		slog.String("artist", artist.Name),
		slog.String("from", album.Name),
		slog.String("to", newName),
	)
	return nil
}

// DeleteAlbum removes an album, provided no song references it.
func (service *Service) DeleteAlbum(ctx context.Context, identity *sec.Identity, artistName, albumName string) error {
	artist, album, err := service.resolver.Album(ctx, artistName, albumName)
	if err != nil {
		return err
	}
	if err := requireOwner(identity, album.UserID); err != nil {
		return err
	}

	hasSongs, err := service.store.AlbumHasSongs(ctx, album.ID)
	if err != nil {
		return err
	}
	if hasSongs {
		return apperr.Forbidden("album still has songs")
	}

	if err := service.store.DeleteAlbum(ctx, album.ID); err != nil {
		return err
	}

	service.logger.Warn("album_deleted",
		slog.String("artist", artist.Name),
		slog.String("name", album.Name),
	)
	return nil
}
