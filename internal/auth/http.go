// Copyright (c) 2026 Cadenza. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cadenza-music/cadenza/internal/platform/request"
	"github.com/cadenza-music/cadenza/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the account and token HTTP endpoints.
//
// # Scope
//
// This layer is strictly responsible for transport concerns (status codes,
// JSON envelopes); all account rules live in [Service].
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// SignUpRoutes returns a [chi.Router] for the /signup endpoint.
func (handler *Handler) SignUpRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.signUp)
	return router
}

// AuthRoutes returns a [chi.Router] for the /auth endpoint.
//
// # Endpoints
//   - GET  /auth : Verifies credentials and returns the current token.
//   - POST /auth : Verifies credentials and rotates the token.
func (handler *Handler) AuthRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.currentToken)
	router.Post("/", handler.rotateToken)
	return router
}

// # Request Payloads

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (payload credentialsRequest) toCredentials() Credentials {
	return Credentials{Username: payload.Username, Password: payload.Password}
}

/*
signUp handles the creation of a new user account.

POST /signup

Response:
  - 201: "user successfully created"
  - 400: Missing credentials or username too long
  - 409: "username already exists"
*/
func (handler *Handler) signUp(writer http.ResponseWriter, request *http.Request) {
	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authService.SignUp(request.Context(), input.toCredentials()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusCreated, "user successfully created")
}

/*
currentToken verifies credentials and returns the caller's active token.

GET /auth

The credentials travel in the JSON body for this endpoint as well; no token
is minted here, so repeated calls are free of side effects.

Response:
  - 200: The current token as the notice message
  - 401: "invalid login credentials"
*/
func (handler *Handler) currentToken(writer http.ResponseWriter, request *http.Request) {
	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.VerifyCredentials(request.Context(), input.toCredentials())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, user.Token)
}

/*
rotateToken verifies credentials and replaces the caller's token.

POST /auth

The previous token stops resolving the moment this returns.

Response:
  - 200: The new token as the notice message
  - 401: "invalid login credentials"
*/
func (handler *Handler) rotateToken(writer http.ResponseWriter, request *http.Request) {
	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.Login(request.Context(), input.toCredentials())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, token)
}
