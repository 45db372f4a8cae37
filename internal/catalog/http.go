// Copyright (c) 2026 Cadenza. All rights reserved.

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cadenza-music/cadenza/internal/platform/middleware"
	requestutil "github.com/cadenza-music/cadenza/internal/platform/request"
)

// Handler implements the catalog HTTP endpoints. Per-resource handlers live
// in http_artist.go, http_album.go and http_song.go.
type Handler struct {
	catalogService *Service
	tokenResolver  middleware.TokenResolver
}

// NewHandler constructs a catalog [Handler].
func NewHandler(service *Service, resolver middleware.TokenResolver) *Handler {
	return &Handler{
		catalogService: service,
		tokenResolver:  resolver,
	}
}

// Routes returns a [chi.Router] with the full /artists tree.
//
// Reads are public. Every mutating method requires a resolved bearer token;
// the methods are registered explicitly so anything outside this table falls
// through to the router's method-not-allowed handler.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	authenticated := router.With(middleware.Authenticate(handler.tokenResolver), middleware.RequireAuth)

	router.Get("/", handler.listArtists)

	router.Get("/{artist}", handler.getArtist)
	authenticated.Post("/{artist}", handler.createArtist)
	authenticated.Patch("/{artist}", handler.renameArtist)
	authenticated.Delete("/{artist}", handler.deleteArtist)

	router.Get("/{artist}/albums", handler.listAlbums)

	router.Get("/{artist}/albums/{album}", handler.getAlbum)
	authenticated.Post("/{artist}/albums/{album}", handler.createAlbum)
	authenticated.Patch("/{artist}/albums/{album}", handler.renameAlbum)
	authenticated.Delete("/{artist}/albums/{album}", handler.deleteAlbum)

	router.Get("/{artist}/albums/{album}/songs", handler.listSongs)

	router.Get("/{artist}/albums/{album}/songs/{song}", handler.getSong)
	authenticated.Post("/{artist}/albums/{album}/songs/{song}", handler.createSong)
	authenticated.Patch("/{artist}/albums/{album}/songs/{song}", handler.updateSong)
	authenticated.Delete("/{artist}/albums/{album}/songs/{song}", handler.deleteSong)

	return router
}

// pathNames pulls the hierarchy parameters present on the route.
func pathNames(request *http.Request) (artist, album, song string) {
	return requestutil.Param(request, "artist"),
		requestutil.Param(request, "album"),
		requestutil.Param(request, "song")
}
