// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"context"

	"github.com/cadenza-music/cadenza/internal/platform/canonical"
)

// Resolver walks the artist → album → song hierarchy by canonical name.
// Every path segment is reduced to its canonical form before lookup, so the
// spaced and dashed spellings of a name resolve to the same record.
//
// Resolution is strictly top-down and parent-scoped: an album is only looked
// up inside its resolved artist, a song only inside its resolved album. The
// first missing ancestor short-circuits the walk with that ancestor's
// NotFound, so a request for a song under a nonexistent artist reports the
// artist, not the song.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Artist resolves an artist by name.
func (resolver *Resolver) Artist(ctx context.Context, name string) (*Artist, error) {
	return resolver.store.FindArtistByName(ctx, canonical.Key(name))
}

// Album resolves an artist and one of its albums.
func (resolver *Resolver) Album(ctx context.Context, artistName, albumName string) (*Artist, *Album, error) {
	artist, err := resolver.Artist(ctx, artistName)
	if err != nil {
		return nil, nil, err
	}

	album, err := resolver.store.FindAlbumByName(ctx, artist.ID, canonical.Key(albumName))
	if err != nil {
		return nil, nil, err
	}

	return artist, album, nil
}

// Song resolves the full chain down to a song.
func (resolver *Resolver) Song(ctx context.Context, artistName, albumName, songName string) (*Artist, *Album, *Song, error) {
	artist, album, err := resolver.Album(ctx, artistName, albumName)
	if err != nil {
		return nil, nil, nil, err
	}

	song, err := resolver.store.FindSongByName(ctx, artist.ID, album.ID, canonical.Key(songName))
	if err != nil {
		return nil, nil, nil, err
	}

	return artist, album, song, nil
}
