// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/contacts/internal/platform/middleware"
	requestutil "github.com/taibuivan/contacts/internal/platform/request"
	"github.com/taibuivan/contacts/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the /api/users endpoints.
//
// The handler is a thin mediation layer: decode, call [Service], respond.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// RegisterRoutes binds the user endpoints onto router, which is mounted at /api/users.
//
// # Endpoints
//   - POST   /         : Register.
//   - POST   /login    : Exchange credentials for a token.
//   - GET    /current  : Current user (auth).
//   - PATCH  /current  : Update name and/or password (auth).
//   - DELETE /logout   : Clear the session token (auth).
func (handler *Handler) RegisterRoutes(router chi.Router) {

	// Public endpoints
	router.Post("/", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/current", handler.current)
		protected.Patch("/current", handler.update)
		protected.Delete("/logout", handler.logout)
	})
}

/*
POST /api/users

Response:
  - 200: UserResponse
  - 400: Validation failure or taken username
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
POST /api/users/login

Response:
  - 200: TokenResponse
  - 401: Unknown username or wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.accountService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, token)
}

// GET /api/users/current
func (handler *Handler) current(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Get(request.Context(), caller)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// PATCH /api/users/current
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Update(request.Context(), caller, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// DELETE /api/users/logout
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.Logout(request.Context(), caller); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Done(writer)
}
