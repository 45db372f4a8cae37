// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
)

// memStore is an in-memory [Store] mirroring the semantics of the postgres
// implementation, including the Conflict errors the unique indexes raise.
type memStore struct {
	mu      sync.Mutex
	artists map[string]*Artist
	albums  map[string]*Album
	songs   map[string]*Song
}

func newMemStore() *memStore {
	return &memStore{
		artists: make(map[string]*Artist),
		albums:  make(map[string]*Album),
		songs:   make(map[string]*Song),
	}
}

func (store *memStore) stamp(created *time.Time, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

// # Artists

func (store *memStore) ListArtists(context.Context) ([]*Artist, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	artists := make([]*Artist, 0, len(store.artists))
	for _, artist := range store.artists {
		copied := *artist
		artists = append(artists, &copied)
	}
	return artists, nil
}

func (store *memStore) FindArtistByName(_ context.Context, name string) (*Artist, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if artist := store.artistByName(name); artist != nil {
		copied := *artist
		return &copied, nil
	}
	return nil, apperr.NotFound("artist")
}

func (store *memStore) CreateArtist(_ context.Context, artist *Artist) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.artistByName(artist.Name) != nil {
		return apperr.Conflict("artist already exists")
	}
	store.stamp(&artist.CreatedAt, &artist.UpdatedAt)
	copied := *artist
	store.artists[artist.ID] = &copied
	return nil
}

func (store *memStore) RenameArtist(_ context.Context, id, newName string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if existing := store.artistByName(newName); existing != nil && existing.ID != id {
		return apperr.Conflict("new artist already exists")
	}
	artist, ok := store.artists[id]
	if !ok {
		return apperr.NotFound("artist")
	}
	artist.Name = newName
	artist.UpdatedAt = time.Now()
	return nil
}

func (store *memStore) DeleteArtist(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.artists[id]; !ok {
		return apperr.NotFound("artist")
	}
	delete(store.artists, id)
	return nil
}

func (store *memStore) ArtistHasDependents(_ context.Context, artistID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, album := range store.albums {
		if album.ArtistID == artistID {
			return true, nil
		}
	}
	for _, song := range store.songs {
		if song.ArtistID == artistID {
			return true, nil
		}
	}
	return false, nil
}

func (store *memStore) artistByName(name string) *Artist {
	for _, artist := range store.artists {
		if artist.Name == name {
			return artist
		}
	}
	return nil
}

// # Albums

func (store *memStore) ListAlbums(_ context.Context, artistID string) ([]*Album, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	albums := make([]*Album, 0)
	for _, album := range store.albums {
		if album.ArtistID == artistID {
			copied := *album
			albums = append(albums, &copied)
		}
	}
	return albums, nil
}

func (store *memStore) FindAlbumByName(_ context.Context, artistID, name string) (*Album, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if album := store.albumByName(artistID, name); album != nil {
		copied := *album
		return &copied, nil
	}
	return nil, apperr.NotFound("album")
}

func (store *memStore) CreateAlbum(_ context.Context, album *Album) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.albumByName(album.ArtistID, album.Name) != nil {
		return apperr.Conflict("album already exists")
	}
	store.stamp(&album.CreatedAt, &album.UpdatedAt)
	copied := *album
	store.albums[album.ID] = &copied
	return nil
}

func (store *memStore) RenameAlbum(_ context.Context, id, newName string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	album, ok := store.albums[id]
	if !ok {
		return apperr.NotFound("album")
	}
	if existing := store.albumByName(album.ArtistID, newName); existing != nil && existing.ID != id {
		return apperr.Conflict("new album already exists")
	}
	album.Name = newName
	album.UpdatedAt = time.Now()
	return nil
}

func (store *memStore) DeleteAlbum(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.albums[id]; !ok {
		return apperr.NotFound("album")
	}
	delete(store.albums, id)
	return nil
}

func (store *memStore) AlbumHasSongs(_ context.Context, albumID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, song := range store.songs {
		if song.AlbumID == albumID {
			return true, nil
		}
	}
	return false, nil
}

func (store *memStore) albumByName(artistID, name string) *Album {
	for _, album := range store.albums {
		if album.ArtistID == artistID && album.Name == name {
			return album
		}
	}
	return nil
}

// # Songs

func (store *memStore) ListSongs(_ context.Context, artistID, albumID string) ([]*Song, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	songs := make([]*Song, 0)
	for _, song := range store.songs {
		if song.ArtistID == artistID && song.AlbumID == albumID {
			copied := *song
			songs = append(songs, &copied)
		}
	}
	return songs, nil
}

func (store *memStore) FindSongByName(_ context.Context, artistID, albumID, name string) (*Song, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if song := store.songByName(artistID, albumID, name); song != nil {
		copied := *song
		return &copied, nil
	}
	return nil, apperr.NotFound("song")
}

func (store *memStore) CreateSong(_ context.Context, song *Song) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.songByName(song.ArtistID, song.AlbumID, song.Name) != nil {
		return apperr.Conflict("song already exists")
	}
	store.stamp(&song.CreatedAt, &song.UpdatedAt)
	copied := *song
	store.songs[song.ID] = &copied
	return nil
}

func (store *memStore) UpdateSong(_ context.Context, id, newName, lyrics string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	song, ok := store.songs[id]
	if !ok {
		return apperr.NotFound("song")
	}
	if existing := store.songByName(song.ArtistID, song.AlbumID, newName); existing != nil && existing.ID != id {
		return apperr.Conflict("new song already exists")
	}
	song.Name = newName
	song.Lyrics = lyrics
	song.UpdatedAt = time.Now()
	return nil
}

func (store *memStore) DeleteSong(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.songs[id]; !ok {
		return apperr.NotFound("song")
	}
	delete(store.songs, id)
	return nil
}

func (store *memStore) songByName(artistID, albumID, name string) *Song {
	for _, song := range store.songs {
		if song.ArtistID == artistID && song.AlbumID == albumID && song.Name == name {
			return song
		}
	}
	return nil
}
