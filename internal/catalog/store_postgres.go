// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/dberr"
)

// PostgresStore implements [Store] using pgx.
//
// Unique indexes on artists(name), albums(artist_id, name) and
// songs(artist_id, album_id, name) are the final authority on name
// collisions; the SQLSTATE 23505 they raise under racing writes is mapped
// to the same Conflict the service pre-checks report.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates the PostgreSQL catalog store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// # Artists

const artistColumns = `id, name, user_id, created_at, updated_at`

func (store *PostgresStore) ListArtists(ctx context.Context) ([]*Artist, error) {
	const query = `SELECT ` + artistColumns + ` FROM artists ORDER BY name ASC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "artist", "")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.Name, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "artist", "")
		}
		artists = append(artists, a)
	}

	return artists, dberr.Wrap(rows.Err(), "artist", "")
}

func (store *PostgresStore) FindArtistByName(ctx context.Context, name string) (*Artist, error) {
	const query = `SELECT ` + artistColumns + ` FROM artists WHERE name = $1`

	a := &Artist{}
	err := store.db.QueryRow(ctx, query, name).Scan(&a.ID, &a.Name, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "artist", "")
	}

	return a, nil
}

func (store *PostgresStore) CreateArtist(ctx context.Context, artist *Artist) error {
	const query = `
		INSERT INTO artists (id, name, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := store.db.QueryRow(ctx, query, artist.ID, artist.Name, artist.UserID).
		Scan(&artist.CreatedAt, &artist.UpdatedAt)
	return dberr.Wrap(err, "artist", "artist already exists")
}

func (store *PostgresStore) RenameArtist(ctx context.Context, id, newName string) error {
	const query = `UPDATE artists SET name = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id, newName)
	if err != nil {
		return dberr.Wrap(err, "artist", "new artist already exists")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("artist")
	}
	return nil
}

func (store *PostgresStore) DeleteArtist(ctx context.Context, id string) error {
	const query = `DELETE FROM artists WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "artist", "")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("artist")
	}
	return nil
}

func (store *PostgresStore) ArtistHasDependents(ctx context.Context, artistID string) (bool, error) {
	// Songs are checked directly rather than through their albums, so an
	// orphaned song (should one ever exist) still blocks the delete.
	const query = `
		SELECT EXISTS (SELECT 1 FROM albums WHERE artist_id = $1)
		    OR EXISTS (SELECT 1 FROM songs  WHERE artist_id = $1)`

	var exists bool
	if err := store.db.QueryRow(ctx, query, artistID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "artist", "")
	}

	return exists, nil
}

// # Albums

const albumColumns = `id, name, user_id, artist_id, created_at, updated_at`

func (store *PostgresStore) ListAlbums(ctx context.Context, artistID string) ([]*Album, error) {
	const query = `SELECT ` + albumColumns + ` FROM albums WHERE artist_id = $1 ORDER BY name ASC`

	rows, err := store.db.Query(ctx, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, "album", "")
	}
	defer rows.Close()

	var albums []*Album
	for rows.Next() {
		a := &Album{}
		if err := rows.Scan(&a.ID, &a.Name, &a.UserID, &a.ArtistID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "album", "")
		}
		albums = append(albums, a)
	}

	return albums, dberr.Wrap(rows.Err(), "album", "")
}

func (store *PostgresStore) FindAlbumByName(ctx context.Context, artistID, name string) (*Album, error) {
	const query = `SELECT ` + albumColumns + ` FROM albums WHERE artist_id = $1 AND name = $2`

	a := &Album{}
	err := store.db.QueryRow(ctx, query, artistID, name).
		Scan(&a.ID, &a.Name, &a.UserID, &a.ArtistID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "album", "")
	}

	return a, nil
}

func (store *PostgresStore) CreateAlbum(ctx context.Context, album *Album) error {
	const query = `
		INSERT INTO albums (id, name, user_id, artist_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := store.db.QueryRow(ctx, query, album.ID, album.Name, album.UserID, album.ArtistID).
		Scan(&album.CreatedAt, &album.UpdatedAt)
	return dberr.Wrap(err, "album", "album already exists")
}

func (store *PostgresStore) RenameAlbum(ctx context.Context, id, newName string) error {
	const query = `UPDATE albums SET name = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id, newName)
	if err != nil {
		return dberr.Wrap(err, "album", "new album already exists")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("album")
	}
	return nil
}

func (store *PostgresStore) DeleteAlbum(ctx context.Context, id string) error {
	const query = `DELETE FROM albums WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "album", "")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("album")
	}
	return nil
}

func (store *PostgresStore) AlbumHasSongs(ctx context.Context, albumID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM songs WHERE album_id = $1)`

	var exists bool
	if err := store.db.QueryRow(ctx, query, albumID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "album", "")
	}

	return exists, nil
}

// # Songs

const songColumns = `id, name, lyrics, user_id, artist_id, album_id, created_at, updated_at`

func (store *PostgresStore) ListSongs(ctx context.Context, artistID, albumID string) ([]*Song, error) {
	const query = `SELECT ` + songColumns + ` FROM songs
		WHERE artist_id = $1 AND album_id = $2 ORDER BY name ASC`

	rows, err := store.db.Query(ctx, query, artistID, albumID)
	if err != nil {
		return nil, dberr.Wrap(err, "song", "")
	}
	defer rows.Close()

	var songs []*Song
	for rows.Next() {
		s := &Song{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Lyrics, &s.UserID, &s.ArtistID, &s.AlbumID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "song", "")
		}
		songs = append(songs, s)
	}

	return songs, dberr.Wrap(rows.Err(), "song", "")
}

func (store *PostgresStore) FindSongByName(ctx context.Context, artistID, albumID, name string) (*Song, error) {
	const query = `SELECT ` + songColumns + ` FROM songs
		WHERE artist_id = $1 AND album_id = $2 AND name = $3`

	s := &Song{}
	err := store.db.QueryRow(ctx, query, artistID, albumID, name).
		Scan(&s.ID, &s.Name, &s.Lyrics, &s.UserID, &s.ArtistID, &s.AlbumID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "song", "")
	}

	return s, nil
}

func (store *PostgresStore) CreateSong(ctx context.Context, song *Song) error {
	const query = `
		INSERT INTO songs (id, name, lyrics, user_id, artist_id, album_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := store.db.QueryRow(ctx, query, song.ID, song.Name, song.Lyrics, song.UserID, song.ArtistID, song.AlbumID).
		Scan(&song.CreatedAt, &song.UpdatedAt)
	return dberr.Wrap(err, "song", "song already exists")
}

func (store *PostgresStore) UpdateSong(ctx context.Context, id, newName, lyrics string) error {
	const query = `UPDATE songs SET name = $2, lyrics = $3, updated_at = NOW() WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id, newName, lyrics)
	if err != nil {
		return dberr.Wrap(err, "song", "new song already exists")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("song")
	}
	return nil
}

func (store *PostgresStore) DeleteSong(ctx context.Context, id string) error {
	const query = `DELETE FROM songs WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "song", "")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("song")
	}
	return nil
}
