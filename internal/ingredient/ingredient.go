// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

// Package ingredient manages the standalone ingredient catalog, the lookup
// table recipes draw their ingredient names from.
package ingredient

import (
	"context"

	"github.com/lequocan/ladle/pkg/pagination"
)

// Ingredient is a catalog entry.
type Ingredient struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FieldName is the JSON field validated on write requests.
const FieldName = "name"

// Repository defines data access for the ingredient catalog.
type Repository interface {
	FindByID(context context.Context, id int) (*Ingredient, error)
	ListAll(context context.Context) ([]*Ingredient, error)
	SearchByName(context context.Context, term string) ([]*Ingredient, error)
	SearchPaged(context context.Context, term string, opts pagination.Options) (pagination.Page[*Ingredient], error)
	Save(context context.Context, ingredient *Ingredient) error
	Delete(context context.Context, id int) error
}
