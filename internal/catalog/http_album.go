// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"net/http"

	requestutil "github.com/cadenza-music/cadenza/internal/platform/request"
	"github.com/cadenza-music/cadenza/internal/platform/respond"
)

type renameAlbumRequest struct {
	Album string `json:"album"`
}

// GET /artists/{artist}/albums
func (handler *Handler) listAlbums(writer http.ResponseWriter, request *http.Request) {
	artistName, _, _ := pathNames(request)

	albums, err := handler.catalogService.ListAlbums(request.Context(), artistName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, albums)
}

// GET /artists/{artist}/albums/{album}
func (handler *Handler) getAlbum(writer http.ResponseWriter, request *http.Request) {
	artistName, albumName, _ := pathNames(request)

	album, err := handler.catalogService.GetAlbum(request.Context(), artistName, albumName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, album)
}

// POST /artists/{artist}/albums/{album}
func (handler *Handler) createAlbum(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, albumName, _ := pathNames(request)
	if err := handler.catalogService.CreateAlbum(request.Context(), identity, artistName, albumName); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusCreated, "album successfully posted")
}

// PATCH /artists/{artist}/albums/{album}
func (handler *Handler) renameAlbum(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, albumName, _ := pathNames(request)

	var input renameAlbumRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.Album == "" {
		input.Album = albumName
	}

	if err := handler.catalogService.RenameAlbum(request.Context(), identity, artistName, albumName, input.Album); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, "album successfully patched")
}

// DELETE /artists/{artist}/albums/{album}
func (handler *Handler) deleteAlbum(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, albumName, _ := pathNames(request)
	if err := handler.catalogService.DeleteAlbum(request.Context(), identity, artistName, albumName); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, "album successfully deleted")
}
