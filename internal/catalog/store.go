// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import "context"

// ArtistStore defines data access for artists.
//
// Find methods return [apperr.NotFound] when no row matches and
// [apperr.Internal] on infrastructure failures. Create and Rename return
// [apperr.Conflict] when the unique index on the name is violated.
type ArtistStore interface {
	ListArtists(ctx context.Context) ([]*Artist, error)
	FindArtistByName(ctx context.Context, name string) (*Artist, error)
	CreateArtist(ctx context.Context, artist *Artist) error
	RenameArtist(ctx context.Context, id, newName string) error
	DeleteArtist(ctx context.Context, id string) error

	// ArtistHasDependents reports whether any album or song still
	// references the artist.
	ArtistHasDependents(ctx context.Context, artistID string) (bool, error)
}

// AlbumStore defines data access for albums. Album names are scoped to
// their artist.
type AlbumStore interface {
	ListAlbums(ctx context.Context, artistID string) ([]*Album, error)
	FindAlbumByName(ctx context.Context, artistID, name string) (*Album, error)
	CreateAlbum(ctx context.Context, album *Album) error
	RenameAlbum(ctx context.Context, id, newName string) error
	DeleteAlbum(ctx context.Context, id string) error

	// AlbumHasSongs reports whether any song still references the album.
	AlbumHasSongs(ctx context.Context, albumID string) (bool, error)
}

// SongStore defines data access for songs. Song names are scoped to the
// artist+album pair.
type SongStore interface {
	ListSongs(ctx context.Context, artistID, albumID string) ([]*Song, error)
	FindSongByName(ctx context.Context, artistID, albumID, name string) (*Song, error)
	CreateSong(ctx context.Context, song *Song) error

	// UpdateSong replaces the song's name and lyrics together.
	UpdateSong(ctx context.Context, id, newName, lyrics string) error
	DeleteSong(ctx context.Context, id string) error
}

// Store is the complete catalog persistence contract. The canonical
// implementation is PostgreSQL ([PostgresStore]); an in-memory fake backs
// the service tests.
type Store interface {
	ArtistStore
	AlbumStore
	SongStore
}
