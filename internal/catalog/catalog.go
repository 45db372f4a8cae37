// Copyright (c) 2026 Cadenza. All rights reserved.

/*
Package catalog implements the artist → album → song hierarchy.

Every record is addressed by its canonical name, scoped to its parent:
artist names are globally unique, album names unique per artist, song names
unique per artist+album. Records remember which user created them; only that
user may modify or delete them, and a parent cannot be deleted while children
still reference it.
*/
package catalog

import "time"

// Artist is the root of the hierarchy.
type Artist struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Album belongs to exactly one artist.
type Album struct {
	ID        string
	Name      string
	UserID    string
	ArtistID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Song belongs to exactly one album (and, denormalized, its artist).
//
// ArtistID is stored alongside AlbumID so integrity checks on the artist
// never need to walk through albums.
type Song struct {
	ID        string
	Name      string
	Lyrics    string
	UserID    string
	ArtistID  string
	AlbumID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// # API Views
//
// Views are the wire shapes of catalog reads. They hide IDs and ownership;
// the public catalog is addressed purely by name.

// ArtistView is the read representation of an artist.
type ArtistView struct {
	Name    string      `json:"name"`
	Albums  []AlbumView `json:"albums"`
	Created time.Time   `json:"created"`
	Updated time.Time   `json:"updated"`
}

// AlbumView is the read representation of an album.
type AlbumView struct {
	Name    string     `json:"name"`
	Songs   []SongView `json:"songs"`
	Created time.Time  `json:"created"`
	Updated time.Time  `json:"updated"`
}

// SongView is the read representation of a song.
type SongView struct {
	Name    string    `json:"name"`
	Lyrics  string    `json:"lyrics"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// NewArtistView renders an artist with the given albums (empty slice, not
// nil, when there are none — the JSON must show an array).
func NewArtistView(artist *Artist, albums []AlbumView) ArtistView {
	if albums == nil {
		albums = []AlbumView{}
	}
	return ArtistView{
		Name:    artist.Name,
		Albums:  albums,
		Created: artist.CreatedAt,
		Updated: artist.UpdatedAt,
	}
}

// NewAlbumView renders an album with the given songs.
func NewAlbumView(album *Album, songs []SongView) AlbumView {
	if songs == nil {
		songs = []SongView{}
	}
	return AlbumView{
		Name:    album.Name,
		Songs:   songs,
		Created: album.CreatedAt,
		Updated: album.UpdatedAt,
	}
}

// NewSongView renders a song.
func NewSongView(song *Song) SongView {
	return SongView{
		Name:    song.Name,
		Lyrics:  song.Lyrics,
		Created: song.CreatedAt,
		Updated: song.UpdatedAt,
	}
}
