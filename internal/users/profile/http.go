// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/passport/internal/platform/middleware"
	requestutil "github.com/taibuivan/passport/internal/platform/request"
	"github.com/taibuivan/passport/internal/platform/respond"
)

// # HTTP Layer

// Handler implements profile HTTP endpoints.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new profile [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] with profile routes. All routes require
// authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
	})

	return router
}

/*
Me returns the authenticated caller's own profile.

GET /api/v1/me

Description: Resolves the caller from the verified token claims and serves
the profile through the read-through cache.

Response:
  - 200: Profile
  - 401: ErrUnauthorized: Missing or invalid token
  - 404: ErrNotFound: Account was deleted after the token was issued
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
