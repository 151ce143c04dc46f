// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/passport/internal/platform/middleware"
	requestutil "github.com/taibuivan/passport/internal/platform/request"
	"github.com/taibuivan/passport/internal/platform/respond"
	"github.com/taibuivan/passport/internal/platform/validate"
	"github.com/taibuivan/passport/pkg/username"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register  : Creates a new account.
//   - POST /login     : Authenticates and returns a JWT.
//   - GET  /protected : Example bearer-gated route.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/protected", handler.protected)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// validateCredentials applies the shared input schema for name+password bodies.
func validateCredentials(name, password string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).
		MinLen(FieldName, name, MinNameLength).
		MaxLen(FieldName, name, MaxNameLength).
		Custom(FieldName, name != "" && !username.IsValid(username.Canonical(name)),
			"Must contain only letters, digits, '.', '_' or '-'").
		Required(FieldPassword, password).
		MinLen(FieldPassword, password, MinPasswordLength)

	return validator.Err()
}

/*
Register handles the creation of a new user account.

POST /api/v1/users/register

Description: Validates input and persists a new account. Does not auto-login.

Request:
  - Body: registerRequest (Name, Password)

Response:
  - 201: PublicUser: Created account (id, name)
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Name already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateCredentials(input.Name, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user.Public())
}

/*
Login authenticates a user and issues a bearer token.

POST /api/v1/users/login

Description: Verifies credentials and returns a signed JWT alongside the
public user profile. The password hash never appears in the response.

Request:
  - Body: loginRequest (Name, Password)

Response:
  - 200: {user, token}
  - 401: ErrUnauthorized: Invalid credentials (identical for unknown name and wrong password)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Name:     input.Name,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldUser:  session.User.Public(),
		FieldToken: session.Token,
	})
}

/*
Protected is an example bearer-gated route.

GET /api/v1/users/protected

Description: Reachable only with a valid bearer token; echoes the verified
claims so clients can confirm their token works.

Response:
  - 200: Message plus the caller's identity
  - 401: ErrUnauthorized: Missing, malformed, or expired token
*/
func (handler *Handler) protected(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "This is a protected route",
		FieldName:    claims.Name,
	})
}
