// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package ingredient

import (
	"context"
	"log/slog"

	"github.com/lequocan/ladle/pkg/pagination"
)

// Service implements ingredient catalog use cases over a Repository.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService creates an ingredient service.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger.With(slog.String("service", "ingredient")),
	}
}

func (service *Service) Get(ctx context.Context, id int) (*Ingredient, error) {
	return service.repository.FindByID(ctx, id)
}

func (service *Service) ListAll(ctx context.Context) ([]*Ingredient, error) {
	return service.repository.ListAll(ctx)
}

func (service *Service) SearchByName(ctx context.Context, term string) ([]*Ingredient, error) {
	return service.repository.SearchByName(ctx, term)
}

func (service *Service) SearchPaged(ctx context.Context, term string, opts pagination.Options) (pagination.Page[*Ingredient], error) {
	return service.repository.SearchPaged(ctx, term, opts)
}

func (service *Service) Create(ctx context.Context, ingredient *Ingredient) (*Ingredient, error) {
	ingredient.ID = 0
	if err := service.repository.Save(ctx, ingredient); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "ingredient_created", slog.Int("ingredient_id", ingredient.ID))
	return ingredient, nil
}

func (service *Service) Update(ctx context.Context, id int, ingredient *Ingredient) (*Ingredient, error) {
	ingredient.ID = id
	if err := service.repository.Save(ctx, ingredient); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "ingredient_updated", slog.Int("ingredient_id", id))
	return ingredient, nil
}

func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "ingredient_deleted", slog.Int("ingredient_id", id))
	return nil
}
