// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package recipe

import (
	"context"
	"log/slog"

	"github.com/lequocan/ladle/pkg/pagination"
	"github.com/lequocan/ladle/pkg/slug"
)

// Service implements recipe use cases over a Repository.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService creates a recipe service.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger.With(slog.String("service", "recipe")),
	}
}

/*
	Get returns the recipe with the given ID.

	Returns:
	  - *Recipe: Hydrated entity
	  - error: apperr.NotFound when no such recipe exists
*/
func (service *Service) Get(ctx context.Context, id int) (*Recipe, error) {
	return service.repository.FindByID(ctx, id)
}

/*
	ListAll returns every recipe ordered by id ascending. An empty catalog is
	an empty slice, not an error.
*/
func (service *Service) ListAll(ctx context.Context) ([]*Recipe, error) {
	return service.repository.ListAll(ctx)
}

/*
	SearchByName returns recipes whose name contains term as a
	case-insensitive substring.
*/
func (service *Service) SearchByName(ctx context.Context, term string) ([]*Recipe, error) {
	return service.repository.SearchByName(ctx, term)
}

/*
	SearchByIngredient returns recipes whose ingredient text contains term as
	a case-insensitive substring.
*/
func (service *Service) SearchByIngredient(ctx context.Context, term string) ([]*Recipe, error) {
	return service.repository.SearchByIngredient(ctx, term)
}

/*
	SearchPaged returns one page of the (optionally term-filtered) catalog,
	sorted per opts.

	Returns:
	  - pagination.Page[*Recipe]: Result window with totals over the filtered set
	  - error: Database retrieval failures
*/
func (service *Service) SearchPaged(ctx context.Context, term string, opts pagination.Options) (pagination.Page[*Recipe], error) {
	return service.repository.SearchPaged(ctx, term, opts)
}

/*
	Create persists a new recipe and returns it with the assigned ID.

	Returns:
	  - *Recipe: Persisted entity
	  - error: Database persistence failures
*/
func (service *Service) Create(ctx context.Context, recipe *Recipe) (*Recipe, error) {
	recipe.ID = 0
	recipe.Slug = slug.From(recipe.Name)
	if err := service.repository.Save(ctx, recipe); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "recipe_created",
		slog.Int("recipe_id", recipe.ID),
		slog.String("slug", recipe.Slug),
	)
	return recipe, nil
}

/*
	Update replaces every field of an existing recipe, preserving its ID.

	Returns:
	  - *Recipe: Updated entity
	  - error: apperr.NotFound when the ID does not exist
*/
func (service *Service) Update(ctx context.Context, id int, recipe *Recipe) (*Recipe, error) {
	recipe.ID = id
	recipe.Slug = slug.From(recipe.Name)
	if err := service.repository.Save(ctx, recipe); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "recipe_updated", slog.Int("recipe_id", id))
	return recipe, nil
}

/*
	Delete removes a recipe by ID.

	Returns:
	  - error: apperr.NotFound when the ID does not exist
*/
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "recipe_deleted", slog.Int("recipe_id", id))
	return nil
}
