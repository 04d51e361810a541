// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package recipe

import (
	"context"

	"github.com/lequocan/ladle/pkg/pagination"
)

// Repository defines the data access contract for recipes.
//
// All list-shaped operations return recipes ordered by id ascending unless a
// paged query requests a different sort; an empty result is an empty slice,
// never an error.
type Repository interface {

	/*
		FindByID returns the recipe with the given ID.

		Returns:
		  - *Recipe: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int) (*Recipe, error)

	/*
		ListAll returns every recipe ordered by id ascending.
	*/
	ListAll(context context.Context) ([]*Recipe, error)

	/*
		SearchByName returns recipes whose name contains term as a
		case-insensitive substring, ordered by id ascending.
	*/
	SearchByName(context context.Context, term string) ([]*Recipe, error)

	/*
		SearchByIngredient returns recipes whose ingredient text contains term
		as a case-insensitive substring, ordered by id ascending.
	*/
	SearchByIngredient(context context.Context, term string) ([]*Recipe, error)

	/*
		SearchPaged filters by term (no filter when term is empty), sorts by
		the whitelisted column in opts with id ascending as tiebreak, and
		slices to the requested page.

		A page number beyond the last page yields an empty Items slice with
		the totals intact.
	*/
	SearchPaged(context context.Context, term string, opts pagination.Options) (pagination.Page[*Recipe], error)

	/*
		Save persists the recipe as a whole-record write.

		An unset (zero) ID performs an insert and hydrates the assigned ID;
		a non-zero ID replaces every field of the existing record, preserving
		the ID. Updating a nonexistent ID is apperr.NotFound.
	*/
	Save(context context.Context, recipe *Recipe) error

	/*
		Delete removes the recipe. Deleting a nonexistent ID is
		apperr.NotFound, not a silent success.
	*/
	Delete(context context.Context, id int) error
}
