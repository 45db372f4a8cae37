// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/sec"
)

var (
	alice = &sec.Identity{UserID: "user-alice", Username: "alice"}
	bob   = &sec.Identity{UserID: "user-bob", Username: "bob"}
)

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := newMemStore()
	logger := slog.New(slog.DiscardHandler)
	return NewService(store, logger), store
}

// seedChain creates artist/album/song owned by the given identity.
func seedChain(t *testing.T, service *Service, owner *sec.Identity, artist, album, song string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, service.CreateArtist(ctx, owner, artist))
	require.NoError(t, service.CreateAlbum(ctx, owner, artist, album))
	require.NoError(t, service.CreateSong(ctx, owner, artist, album, song, ""))
}

// # Artists

func TestCreateArtistCanonicalizesName(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Tame Impala"))

	artist, err := service.GetArtist(ctx, "Tame-Impala")
	require.NoError(t, err)
	assert.Equal(t, "Tame-Impala", artist.Name)
	assert.Equal(t, []AlbumView{}, artist.Albums)

	// The spaced spelling addresses the same record.
	spaced, err := service.GetArtist(ctx, "Tame Impala")
	require.NoError(t, err)
	assert.Equal(t, "Tame-Impala", spaced.Name)
}

func TestSpacedPathSpellingsAddressTheSameRecord(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	seedChain(t, service, alice, "Elliott Smith", "Either Or", "Say Yes")

	t.Run("reads accept either spelling at every level", func(t *testing.T) {
		song, err := service.GetSong(ctx, "Elliott Smith", "Either-Or", "Say Yes")
		require.NoError(t, err)
		assert.Equal(t, "Say-Yes", song.Name)

		album, err := service.GetAlbum(ctx, "Elliott-Smith", "Either Or")
		require.NoError(t, err)
		assert.Equal(t, "Either-Or", album.Name)
	})

	t.Run("writes resolve spaced ancestors", func(t *testing.T) {
		require.NoError(t, service.CreateSong(ctx, alice, "Elliott Smith", "Either Or", "Alameda", ""))

		_, err := service.GetSong(ctx, "Elliott-Smith", "Either-Or", "Alameda")
		assert.NoError(t, err)
	})

	t.Run("renaming to the spaced current name is not a rename", func(t *testing.T) {
		err := service.RenameAlbum(ctx, alice, "Elliott Smith", "Either Or", "Either Or")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		assert.Contains(t, err.Error(), "you must provide a new album")
	})

	t.Run("lyrics update through a spaced path keeps the canonical name", func(t *testing.T) {
		lyrics := "I'm in love with the world"
		err := service.UpdateSong(ctx, alice, "Elliott Smith", "Either Or", "Say Yes",
			SongUpdate{Lyrics: &lyrics})
		require.NoError(t, err)

		song, err := service.GetSong(ctx, "Elliott-Smith", "Either-Or", "Say-Yes")
		require.NoError(t, err)
		assert.Equal(t, "Say-Yes", song.Name)
		assert.Equal(t, lyrics, song.Lyrics)
	})
}

func TestCreateArtistDuplicate(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Boards of Canada"))

	// Same canonical name from another user, spaced or not, is a conflict.
	for _, name := range []string{"Boards of Canada", "Boards-of-Canada"} {
		err := service.CreateArtist(ctx, bob, name)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
		assert.Contains(t, err.Error(), "artist already exists")
	}

	artists, err := store.ListArtists(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 1, "conflicting creates must not add rows")
}

func TestCreateArtistValidation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	err := service.CreateArtist(ctx, alice, strings.Repeat("x", 51))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "artist must be at most 50 characters")

	assert.NoError(t, service.CreateArtist(ctx, alice, strings.Repeat("x", 50)))
}

func TestRenameArtist(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Low"))

	t.Run("same name rejected", func(t *testing.T) {
		err := service.RenameArtist(ctx, alice, "Low", "Low")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		assert.Contains(t, err.Error(), "you must provide a new artist")
	})

	t.Run("collision keeps the original", func(t *testing.T) {
		require.NoError(t, service.CreateArtist(ctx, alice, "Lift"))

		err := service.RenameArtist(ctx, alice, "Low", "Lift")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
		assert.Contains(t, err.Error(), "new artist already exists")

		_, err = service.GetArtist(ctx, "Low")
		assert.NoError(t, err, "a failed rename must leave the record addressable")
	})

	t.Run("rename moves the address", func(t *testing.T) {
		require.NoError(t, service.RenameArtist(ctx, alice, "Low", "Lower Dens"))

		_, err := service.GetArtist(ctx, "Lower-Dens")
		assert.NoError(t, err)
		_, err = service.GetArtist(ctx, "Low")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("not the owner", func(t *testing.T) {
		err := service.RenameArtist(ctx, bob, "Lower-Dens", "Stolen")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
		assert.Contains(t, err.Error(), "forbidden request")
	})
}

func TestDeleteArtistIntegrity(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	seedChain(t, service, alice, "Portishead", "Dummy", "Roads")

	err := service.DeleteArtist(ctx, alice, "Portishead")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Contains(t, err.Error(), "artist still has songs/albums")

	// Children removed bottom-up: the song first, then the album.
	require.NoError(t, service.DeleteSong(ctx, alice, "Portishead", "Dummy", "Roads"))
	err = service.DeleteArtist(ctx, alice, "Portishead")
	require.Error(t, err, "an empty album still blocks the artist")

	require.NoError(t, service.DeleteAlbum(ctx, alice, "Portishead", "Dummy"))
	require.NoError(t, service.DeleteArtist(ctx, alice, "Portishead"))

	_, err = service.GetArtist(ctx, "Portishead")
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteArtistCrossUser(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Broadcast"))

	err := service.DeleteArtist(ctx, bob, "Broadcast")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	_, err = service.GetArtist(ctx, "Broadcast")
	assert.NoError(t, err, "a forbidden delete must not remove the record")
}

// # Albums

func TestAlbumLifecycle(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Radiohead"))

	// Anyone may add albums to an existing artist; they own what they add.
	require.NoError(t, service.CreateAlbum(ctx, bob, "Radiohead", "In Rainbows"))

	err := service.CreateAlbum(ctx, alice, "Radiohead", "In Rainbows")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Contains(t, err.Error(), "album already exists")

	album, err := service.GetAlbum(ctx, "Radiohead", "In-Rainbows")
	require.NoError(t, err)
	assert.Equal(t, "In-Rainbows", album.Name)
	assert.Equal(t, []SongView{}, album.Songs)

	// Alice does not own the album, so she cannot delete it.
	err = service.DeleteAlbum(ctx, alice, "Radiohead", "In-Rainbows")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	require.NoError(t, service.DeleteAlbum(ctx, bob, "Radiohead", "In-Rainbows"))
}

func TestDeleteAlbumWithSongs(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	seedChain(t, service, alice, "Massive Attack", "Mezzanine", "Teardrop")

	err := service.DeleteAlbum(ctx, alice, "Massive-Attack", "Mezzanine")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Contains(t, err.Error(), "album still has songs")

	_, err = service.GetAlbum(ctx, "Massive-Attack", "Mezzanine")
	assert.NoError(t, err)
}

func TestAlbumNamesScopedPerArtist(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Beyonce"))
	require.NoError(t, service.CreateArtist(ctx, alice, "Dua Lipa"))

	require.NoError(t, service.CreateAlbum(ctx, alice, "Beyonce", "Homecoming"))
	require.NoError(t, service.CreateAlbum(ctx, alice, "Dua-Lipa", "Homecoming"),
		"the same album name under a different artist is distinct")
}

// # Songs

func TestSongLifecycle(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Nina Simone"))
	require.NoError(t, service.CreateAlbum(ctx, alice, "Nina-Simone", "Pastel Blues"))
	require.NoError(t, service.CreateSong(ctx, alice, "Nina-Simone", "Pastel-Blues", "Sinnerman", "oh sinnerman"))

	song, err := service.GetSong(ctx, "Nina-Simone", "Pastel-Blues", "Sinnerman")
	require.NoError(t, err)
	assert.Equal(t, "Sinnerman", song.Name)
	assert.Equal(t, "oh sinnerman", song.Lyrics)

	err = service.CreateSong(ctx, bob, "Nina-Simone", "Pastel-Blues", "Sinnerman", "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Contains(t, err.Error(), "song already exists")

	require.NoError(t, service.DeleteSong(ctx, alice, "Nina-Simone", "Pastel-Blues", "Sinnerman"))
	_, err = service.GetSong(ctx, "Nina-Simone", "Pastel-Blues", "Sinnerman")
	assert.True(t, apperr.IsNotFound(err))
}

func TestSongLyricsBound(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateArtist(ctx, alice, "Sufjan"))
	require.NoError(t, service.CreateAlbum(ctx, alice, "Sufjan", "Illinois"))

	err := service.CreateSong(ctx, alice, "Sufjan", "Illinois", "Chicago", strings.Repeat("a", 5001))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "lyrics must be at most 5000 characters")

	assert.NoError(t, service.CreateSong(ctx, alice, "Sufjan", "Illinois", "Chicago", strings.Repeat("a", 5000)))
}

func TestUpdateSong(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	seedChain(t, service, alice, "Califone", "Roots and Crowns", "The Orchids")

	strptr := func(s string) *string { return &s }

	t.Run("no fields", func(t *testing.T) {
		err := service.UpdateSong(ctx, alice, "Califone", "Roots-and-Crowns", "The-Orchids", SongUpdate{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "you must provide a new song")
	})

	t.Run("same name and no lyrics", func(t *testing.T) {
		err := service.UpdateSong(ctx, alice, "Califone", "Roots-and-Crowns", "The-Orchids",
			SongUpdate{Name: strptr("The-Orchids")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "you must provide a new song")
	})

	t.Run("lyrics only", func(t *testing.T) {
		err := service.UpdateSong(ctx, alice, "Califone", "Roots-and-Crowns", "The-Orchids",
			SongUpdate{Lyrics: strptr("a friend don't have to say")})
		require.NoError(t, err)

		song, err := service.GetSong(ctx, "Califone", "Roots-and-Crowns", "The-Orchids")
		require.NoError(t, err)
		assert.Equal(t, "a friend don't have to say", song.Lyrics)
	})

	t.Run("rename collision", func(t *testing.T) {
		require.NoError(t, service.CreateSong(ctx, alice, "Califone", "Roots-and-Crowns", "Spider Palace", ""))

		err := service.UpdateSong(ctx, alice, "Califone", "Roots-and-Crowns", "The-Orchids",
			SongUpdate{Name: strptr("Spider Palace")})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
		assert.Contains(t, err.Error(), "new song already exists")
	})

	t.Run("rename keeps lyrics", func(t *testing.T) {
		err := service.UpdateSong(ctx, alice, "Califone", "Roots-and-Crowns", "The-Orchids",
			SongUpdate{Name: strptr("Orchids")})
		require.NoError(t, err)

		song, err := service.GetSong(ctx, "Califone", "Roots-and-Crowns", "Orchids")
		require.NoError(t, err)
		assert.Equal(t, "a friend don't have to say", song.Lyrics)
	})

	t.Run("not the owner", func(t *testing.T) {
		err := service.UpdateSong(ctx, bob, "Califone", "Roots-and-Crowns", "Orchids",
			SongUpdate{Name: strptr("Mine Now")})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})
}
