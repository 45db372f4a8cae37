// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
)

func TestResolverShortCircuitsOnFirstMissingAncestor(t *testing.T) {
	service, store := newTestService(t)
	seedChain(t, service, alice, "Elliott Smith", "Either Or", "Angeles")

	resolver := NewResolver(store)
	ctx := context.Background()

	testCases := []struct {
		name          string
		artist, album string
		song          string
		wantMessage   string
	}{
		{
			name:        "missing artist reported before the song",
			artist:      "Nobody",
			album:       "Either-Or",
			song:        "Angeles",
			wantMessage: "artist not found",
		},
		{
			name:        "missing album reported before the song",
			artist:      "Elliott-Smith",
			album:       "Figure-8",
			song:        "Angeles",
			wantMessage: "album not found",
		},
		{
			name:        "missing song reported last",
			artist:      "Elliott-Smith",
			album:       "Either-Or",
			song:        "Alameda",
			wantMessage: "song not found",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, _, _, err := resolver.Song(ctx, testCase.artist, testCase.album, testCase.song)
			require.Error(t, err)
			assert.True(t, apperr.IsNotFound(err))
			assert.Equal(t, testCase.wantMessage, err.Error())
		})
	}
}

func TestResolverReturnsTheWholeChain(t *testing.T) {
	service, store := newTestService(t)
	seedChain(t, service, alice, "Elliott Smith", "Either Or", "Angeles")

	resolver := NewResolver(store)

	artist, album, song, err := resolver.Song(context.Background(), "Elliott-Smith", "Either-Or", "Angeles")
	require.NoError(t, err)

	assert.Equal(t, "Elliott-Smith", artist.Name)
	assert.Equal(t, "Either-Or", album.Name)
	assert.Equal(t, artist.ID, album.ArtistID)
	assert.Equal(t, "Angeles", song.Name)
	assert.Equal(t, album.ID, song.AlbumID)
	assert.Equal(t, artist.ID, song.ArtistID)
}

func TestResolverCanonicalizesPathSegments(t *testing.T) {
	service, store := newTestService(t)
	seedChain(t, service, alice, "Elliott Smith", "Either Or", "Angeles")

	resolver := NewResolver(store)

	artist, album, song, err := resolver.Song(context.Background(), "Elliott Smith", "Either Or", "Angeles")
	require.NoError(t, err)

	assert.Equal(t, "Elliott-Smith", artist.Name)
	assert.Equal(t, "Either-Or", album.Name)
	assert.Equal(t, "Angeles", song.Name)
}

func TestResolverScopesLookupsToTheParent(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	seedChain(t, service, alice, "Arthur Russell", "World of Echo", "Answers Me")
	require.NoError(t, service.CreateArtist(ctx, alice, "Arthur Verocai"))

	resolver := NewResolver(store)

	// The album exists, but not under this artist.
	_, _, err := resolver.Album(ctx, "Arthur-Verocai", "World-of-Echo")
	require.Error(t, err)
	assert.Equal(t, "album not found", err.Error())
}
