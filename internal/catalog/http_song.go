// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"net/http"

	requestutil "github.com/cadenza-music/cadenza/internal/platform/request"
	"github.com/cadenza-music/cadenza/internal/platform/respond"
)

type createSongRequest struct {
	Lyrics string `json:"lyrics"`
}

type updateSongRequest struct {
	Song   *string `json:"song"`
	Lyrics *string `json:"lyrics"`
}

// GET /artists/{artist}/albums/{album}/songs
func (handler *Handler) listSongs(writer http.ResponseWriter, request *http.Request) {
	artistName, albumName, _ := pathNames(request)

	songs, err := handler.catalogService.ListSongs(request.Context(), artistName, albumName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, songs)
}

// GET /artists/{artist}/albums/{album}/songs/{song}
func (handler *Handler) getSong(writer http.ResponseWriter, request *http.Request) {
	artistName, albumName, songName := pathNames(request)

	song, err := handler.catalogService.GetSong(request.Context(), artistName, albumName, songName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, song)
}

// POST /artists/{artist}/albums/{album}/songs/{song}
//
// The song's name is the URL parameter; the lyrics ride in the body and
// default to empty.
func (handler *Handler) createSong(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, albumName, songName := pathNames(request)

	var input createSongRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.catalogService.CreateSong(request.Context(), identity, artistName, albumName, songName, input.Lyrics); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusCreated, "song successfully posted")
}

// PATCH /artists/{artist}/albums/{album}/songs/{song}
func (handler *Handler) updateSong(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, albumName, songName := pathNames(request)

	var input updateSongRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	update := SongUpdate{Name: input.Song, Lyrics: input.Lyrics}
	if err := handler.catalogService.UpdateSong(request.Context(), identity, artistName, albumName, songName, update); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, "song successfully patched")
}

// DELETE /artists/{artist}/albums/{album}/songs/{song}
func (handler *Handler) deleteSong(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, albumName, songName := pathNames(request)
	if err := handler.catalogService.DeleteSong(request.Context(), identity, artistName, albumName, songName); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, "song successfully deleted")
}
