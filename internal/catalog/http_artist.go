// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"net/http"

	requestutil "github.com/cadenza-music/cadenza/internal/platform/request"
	"github.com/cadenza-music/cadenza/internal/platform/respond"
)

type renameArtistRequest struct {
	Artist string `json:"artist"`
}

// GET /artists
func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.catalogService.ListArtists(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, artists)
}

// GET /artists/{artist}
func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistName, _, _ := pathNames(request)

	artist, err := handler.catalogService.GetArtist(request.Context(), artistName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, artist)
}

// POST /artists/{artist}
//
// The new artist's name is the URL parameter itself; the body is unused.
func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, _, _ := pathNames(request)
	if err := handler.catalogService.CreateArtist(request.Context(), identity, artistName); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusCreated, "artist successfully posted")
}

// PATCH /artists/{artist}
func (handler *Handler) renameArtist(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, _, _ := pathNames(request)

	var input renameArtistRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	// An omitted name behaves like renaming to the current name.
	if input.Artist == "" {
		input.Artist = artistName
	}

	if err := handler.catalogService.RenameArtist(request.Context(), identity, artistName, input.Artist); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, "artist successfully patched")
}

// DELETE /artists/{artist}
func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, _, _ := pathNames(request)
	if err := handler.catalogService.DeleteArtist(request.Context(), identity, artistName); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, "artist successfully deleted")
}
