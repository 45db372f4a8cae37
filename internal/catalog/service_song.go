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

// ListSongs returns an album's songs.
func (service *Service) ListSongs(ctx context.Context, artistName, albumName string) ([]SongView, error) {
	_, album, err := service.resolver.Album(ctx, artistName, albumName)
	if err != nil {
		return nil, err
	}

	songs, err := service.store.ListSongs(ctx, album.ArtistID, album.ID)
	if err != nil {
		return nil, err
	}

	views := make([]SongView, 0, len(songs))
	for _, song := range songs {
		views = append(views, NewSongView(song))
	}

	return views, nil
}

// GetSong returns one song.
func (service *Service) GetSong(ctx context.Context, artistName, albumName, songName string) (SongView, error) {
	_, _, song, err := service.resolver.Song(ctx, artistName, albumName, songName)
	if err != nil {
		return SongView{}, err
	}

	return NewSongView(song), nil
}

// CreateSong adds a song under an existing artist/album pair.
func (service *Service) CreateSong(ctx context.Context, identity *sec.Identity, artistName, albumName, rawName, rawLyrics string) error {
	name, err := canonical.Name(rawName, "song")
	if err != nil {
		return err
	}
	lyrics, err := canonical.Lyrics(rawLyrics)
	if err != nil {
		return err
	}

	artist, album, err := service.resolver.Album(ctx, artistName, albumName)
	if err != nil {
		return err
	}

	_, err = service.store.FindSongByName(ctx, artist.ID, album.ID, name)
	if err == nil {
		return apperr.Conflict("song already exists")
	}
	if !apperr.IsNotFound(err) {
		return fmt.Errorf("catalog_song_lookup_failed: %w", err)
	}

	song := &Song{
		ID:       uuidv7.New(),
		Name:     name,
		Lyrics:   lyrics,
		UserID:   identity.UserID,
		ArtistID: artist.ID,
		AlbumID:  album.ID,
	}
	if err := service.store.CreateSong(ctx, song); err != nil {
		return err
	}

	service.logger.Info("song_created",
		slog.String("artist", artist.Name),
		slog.String("album", album.Name),
		slog.String("name", song.Name),
		slog.String("user_id", identity.UserID),
	)
	return nil
}

// SongUpdate carries the updatable fields of a song. A nil field leaves the
// current value untouched.
type SongUpdate struct {
	Name   *string
	Lyrics *string
}

// UpdateSong renames a song and/or replaces its lyrics.
func (service *Service) UpdateSong(ctx context.Context, identity *sec.Identity, artistName, albumName, currentName string, update SongUpdate) error {
	if update.Name == nil && update.Lyrics == nil {
		return apperr.ValidationError("you must provide a new song")
	}

	currentKey := canonical.Key(currentName)
	newName := currentKey
	if update.Name != nil {
		name, err := canonical.Name(*update.Name, "song")
		if err != nil {
			return err
		}
		if name == currentKey && update.Lyrics == nil {
			return apperr.ValidationError("you must provide a new song")
		}
		newName = name
	}

	artist, album, song, err := service.resolver.Song(ctx, artistName, albumName, currentName)
	if err != nil {
		return err
	}
	if err := requireOwner(identity, song.UserID); err != nil {
		return err
	}

	if newName != currentKey {
		_, err = service.store.FindSongByName(ctx, artist.ID, album.ID, newName)
		if err == nil {
			return apperr.Conflict("new song already exists")
		}
		if !apperr.IsNotFound(err) {
			return fmt.Errorf("catalog_song_lookup_failed: %w", err)
		}
	}

	lyrics := song.Lyrics
	if update.Lyrics != nil {
		lyrics, err = canonical.Lyrics(*update.Lyrics)
		if err != nil {
			return err
		}
	}

	if err := service.store.UpdateSong(ctx, song.ID, newName, lyrics); err != nil {
		return err
	}

	service.logger.Info("song_updated",
		slog.String("artist", artist.Name),
		slog.String("album", album.Name),
		slog.String("from", song.Name),
		slog.String("to", newName),
	)
	return nil
}

// DeleteSong removes a song.
func (service *Service) DeleteSong(ctx context.Context, identity *sec.Identity, artistName, albumName, songName string) error {
	artist, album, song, err := service.resolver.Song(ctx, artistName, albumName, songName)
	if err != nil {
		return err
	}
	if err := requireOwner(identity, song.UserID); err != nil {
		return err
	}

	if err := service.store.DeleteSong(ctx, song.ID); err != nil {
		return err
	}

	service.logger.Warn("song_deleted",
		slog.String("artist", artist.Name),
		slog.String("album", album.Name),
		slog.String("name", song.Name),
	)
	return nil
}
