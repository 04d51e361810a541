// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package ingredient

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/lequocan/ladle/internal/platform/request"
	"github.com/lequocan/ladle/internal/platform/respond"
	"github.com/lequocan/ladle/internal/platform/validate"
	"github.com/lequocan/ladle/pkg/pagination"
)

// Handler implements the ingredient catalog HTTP endpoints.
type Handler struct {
	ingredientService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{ingredientService: service}
}

// RegisterRoutes mounts the ingredient routes on the given router.
//
// # Endpoints
//   - GET    /ingredients      : Lists, searches, or pages the catalog.
//   - POST   /ingredients      : Creates an ingredient (session required).
//   - GET    /ingredients/{id} : Fetches one ingredient.
//   - PUT    /ingredients/{id} : Renames one ingredient.
//   - DELETE /ingredients/{id} : Removes one ingredient.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/ingredients", func(router chi.Router) {
		router.Get("/", handler.list)
		router.Post("/", handler.create)
		router.Get("/{id}", handler.get)
		router.Put("/{id}", handler.update)
		router.Delete("/{id}", handler.remove)
	})
}

type ingredientRequest struct {
	Name string `json:"name"`
}

func (input ingredientRequest) validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)
	return validator.Err()
}

// List mirrors the recipe listing modes for the catalog: a name parameter
// selects substring search, a parseable positive page/pageSize pair selects
// a paged query, anything else returns the full listing.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	if values.Has("name") {
		ingredients, err := handler.ingredientService.SearchByName(request.Context(), values.Get("name"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, ingredients)
		return
	}

	if values.Has("page") && values.Has("pageSize") {
		page, pageErr := strconv.Atoi(values.Get("page"))
		size, sizeErr := strconv.Atoi(values.Get("pageSize"))
		if pageErr == nil && sizeErr == nil && page > 0 && size > 0 {
			opts := pagination.Options{
				Page:     page,
				PageSize: size,
				SortBy:   values.Get("sortBy"),
				SortDir:  values.Get("sortDirection"),
			}
			result, err := handler.ingredientService.SearchPaged(request.Context(), values.Get("term"), opts)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}
			respond.OK(writer, result)
			return
		}
	}

	ingredients, err := handler.ingredientService.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ingredients)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ingredient, err := handler.ingredientService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ingredient)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	if _, err := requestutil.RequiredChef(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ingredientRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.ingredientService.Create(request.Context(), &Ingredient{Name: input.Name})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ingredientRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.ingredientService.Update(request.Context(), id, &Ingredient{Name: input.Name})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.ingredientService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
