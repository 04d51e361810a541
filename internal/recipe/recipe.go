// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

/*
Package recipe implements the recipe catalogue: persistence, substring search,
and the paged+sorted query mode.

# Architecture

  - Repository: Data access contract, implemented on PostgreSQL.
  - Query resolution: The overlapping list parameters (name, ingredient,
    term+paging) are disambiguated by a single ordered decision function
    (see query.go) so every parameter combination has exactly one meaning.
  - Service: Thin orchestration plus input validation.
*/
package recipe

import "time"

// Recipe is the primary managed resource — a named dish record with its
// ingredients and preparation instructions.
type Recipe struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Instructions string    `json:"instructions"`
	Ingredients  []string  `json:"ingredients"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Global field names for validation in the recipe domain.
const (
	FieldName         = "name"
	FieldInstructions = "instructions"
	FieldIngredients  = "ingredients"
)
