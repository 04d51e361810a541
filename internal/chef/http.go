// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

/*
Package chef provides the HTTP delivery layer for chef identity management.

It implements the gateway for the authentication lifecycle — account creation,
login, and logout.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Issues the opaque session token in both the response body and
    the Authorization response header, matching the original client contract.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package chef

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lequocan/ladle/internal/platform/constants"
	mw "github.com/lequocan/ladle/internal/platform/middleware"
	requestutil "github.com/lequocan/ladle/internal/platform/request"
	"github.com/lequocan/ladle/internal/platform/respond"
	"github.com/lequocan/ladle/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	chefService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{chefService: service}
}

// RegisterRoutes mounts the authentication routes on the given router.
//
// # Endpoints
//   - POST /register : Creates a new chef account.
//   - POST /login    : Authenticates and returns a session token.
//   - POST /logout   : Revokes the caller's session token.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new chef account.

POST /register

Description: Validates input, checks for a username conflict, and persists
a new chef profile to the database.

Request:
  - Body: registerRequest (Username, Password)

Response:
  - 201: Chef: Created chef profile
  - 400: VALIDATION_ERROR: Bad input or validation failure
  - 409: CONFLICT: Username already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		MaxLen(FieldUsername, input.Username, 50).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	registered, err := handler.chefService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, registered)
}

/*
Login authenticates a chef and establishes a session.

POST /login

Description: Verifies credentials and issues an opaque session token. The
token travels in the response body and is mirrored in the Authorization
response header for clients that read it from there.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: Token plus chef profile
  - 401: UNAUTHORIZED: Invalid username or password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.chefService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderAuthorization, session.Token)
	respond.OK(writer, map[string]any{
		FieldToken: session.Token,
		"chef":     session.Chef,
	})
}

/*
Logout revokes the caller's session token.

POST /logout

Description: Reads the token from the Authorization header and revokes it in
the session registry. Revocation is idempotent.

Response:
  - 200: Message: Logout successful
  - 400: VALIDATION_ERROR: Missing authorization token
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token := mw.TokenFromHeader(request)

	if token == "" {
		respond.Error(writer, request, validate.RequiredError(FieldToken, "Missing or invalid authorization token"))
		return
	}

	if err := handler.chefService.Logout(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "Logout successful",
	})
}
