// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package recipe

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lequocan/ladle/internal/platform/apperr"
	mw "github.com/lequocan/ladle/internal/platform/middleware"
	requestutil "github.com/lequocan/ladle/internal/platform/request"
	"github.com/lequocan/ladle/internal/platform/respond"
	"github.com/lequocan/ladle/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the recipe HTTP endpoints.
type Handler struct {
	recipeService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{recipeService: service}
}

// RegisterRoutes mounts the recipe routes on the given router.
//
// # Endpoints
//   - GET    /recipes      : Lists, searches, or pages the catalog.
//   - POST   /recipes      : Creates a recipe (session required).
//   - GET    /recipes/{id} : Fetches one recipe.
//   - PUT    /recipes/{id} : Replaces one recipe.
//   - DELETE /recipes/{id} : Removes one recipe.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/recipes", func(router chi.Router) {
		router.Get("/", handler.list)
		router.With(mw.RequireSession).Post("/", handler.create)
		router.Get("/{id}", handler.get)
		router.Put("/{id}", handler.update)
		router.Delete("/{id}", handler.remove)
	})
}

// # Request Payloads

type recipeRequest struct {
	Name         string   `json:"name"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

func (input recipeRequest) validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 200).
		MaxLen(FieldInstructions, input.Instructions, 10000).
		Custom(FieldIngredients, len(input.Ingredients) == 0, "At least one ingredient is required")
	return validator.Err()
}

func (input recipeRequest) toRecipe() *Recipe {
	return &Recipe{
		Name:         input.Name,
		Instructions: input.Instructions,
		Ingredients:  input.Ingredients,
	}
}

// # Endpoint Handlers

/*
List serves the combined listing, search, and paging endpoint.

GET /recipes

Description: Resolves the query parameters to exactly one retrieval mode
(name search, ingredient search, paged query, or full listing) and executes
it. Unpaged modes respond with a JSON array; the paged mode responds with a
page envelope, or 404 when the requested window is empty.

Response:
  - 200: []Recipe or Page[Recipe]
  - 404: NOT_FOUND: Paged query matched nothing
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	query := ResolveListQuery(request.URL.Query())

	switch query.Mode {
	case ModeByName:
		recipes, err := handler.recipeService.SearchByName(request.Context(), query.Term)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, recipes)

	case ModeByIngredient:
		recipes, err := handler.recipeService.SearchByIngredient(request.Context(), query.Term)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, recipes)

	case ModePaged:
		page, err := handler.recipeService.SearchPaged(request.Context(), query.Term, query.Page)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if len(page.Items) == 0 {
			respond.Error(writer, request, apperr.NotFoundMessage("No recipes found"))
			return
		}
		respond.OK(writer, page)

	default:
		recipes, err := handler.recipeService.ListAll(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, recipes)
	}
}

/*
Get fetches a single recipe by ID.

GET /recipes/{id}

Response:
  - 200: Recipe
  - 400: VALIDATION_ERROR: Non-integer ID
  - 404: NOT_FOUND: No such recipe
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	recipe, err := handler.recipeService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, recipe)
}

/*
Create persists a new recipe for the authenticated chef.

POST /recipes

Response:
  - 201: Recipe: Created entity with assigned ID
  - 400: VALIDATION_ERROR: Bad input
  - 401: UNAUTHORIZED: No valid session
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input recipeRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.recipeService.Create(request.Context(), input.toRecipe())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
Update replaces every field of an existing recipe.

PUT /recipes/{id}

Response:
  - 200: Recipe: Updated entity
  - 400: VALIDATION_ERROR: Bad input or non-integer ID
  - 404: NOT_FOUND: No such recipe
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input recipeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.recipeService.Update(request.Context(), id, input.toRecipe())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
Remove deletes a recipe by ID.

DELETE /recipes/{id}

Response:
  - 204: Deleted
  - 400: VALIDATION_ERROR: Non-integer ID
  - 404: NOT_FOUND: No such recipe
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.recipeService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
