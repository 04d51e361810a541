// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package recipe

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/lequocan/ladle/pkg/pagination"
)

// Mode identifies which retrieval strategy a recipe listing request selected.
type Mode int

const (
	// ModeAll returns the full listing.
	ModeAll Mode = iota
	// ModeByName searches by name substring.
	ModeByName
	// ModeByIngredient searches by ingredient substring.
	ModeByIngredient
	// ModePaged returns a sorted, paged window with an optional term filter.
	ModePaged
)

// ListQuery is the resolved form of a recipe listing request.
type ListQuery struct {
	Mode Mode
	Term string
	Page pagination.Options
}

// # Section: Query Resolution

// Resolver parameter names. Casing matters: pageSize, sortBy and
// sortDirection are camelCase on the wire.
const (
	ParamName          = "name"
	ParamIngredient    = "ingredient"
	ParamTerm          = "term"
	ParamPage          = "page"
	ParamPageSize      = "pageSize"
	ParamSortBy        = "sortBy"
	ParamSortDirection = "sortDirection"
)

// SortByID and SortByName are the sortable columns a paged query may request.
// Anything else falls back to SortByID.
const (
	SortByID   = "id"
	SortByName = "name"
)

// ResolveListQuery maps raw query parameters onto exactly one retrieval mode.
//
// Precedence is fixed: a name parameter wins over everything, then
// ingredient, then a well-formed page/pageSize pair, then the full listing.
// Parameters belonging to a lower-precedence mode are ignored outright, so a
// request carrying both name and page/pageSize is a name search with no
// paging. A page/pageSize pair where either value fails to parse as a
// positive integer falls through to the full listing rather than erroring.
func ResolveListQuery(values url.Values) ListQuery {
	if values.Has(ParamName) {
		return ListQuery{Mode: ModeByName, Term: values.Get(ParamName)}
	}

	if values.Has(ParamIngredient) {
		return ListQuery{Mode: ModeByIngredient, Term: values.Get(ParamIngredient)}
	}

	if values.Has(ParamPage) && values.Has(ParamPageSize) {
		page, pageErr := strconv.Atoi(values.Get(ParamPage))
		size, sizeErr := strconv.Atoi(values.Get(ParamPageSize))
		if pageErr == nil && sizeErr == nil && page > 0 && size > 0 {
			options := pagination.Options{
				Page:     page,
				PageSize: size,
				SortBy:   resolveSortColumn(values.Get(ParamSortBy)),
				SortDir:  resolveSortDirection(values.Get(ParamSortDirection)),
			}
			return ListQuery{
				Mode: ModePaged,
				Term: values.Get(ParamTerm),
				Page: options.Normalize(),
			}
		}
	}

	return ListQuery{Mode: ModeAll}
}

func resolveSortColumn(requested string) string {
	switch strings.ToLower(strings.TrimSpace(requested)) {
	case SortByName:
		return SortByName
	default:
		return SortByID
	}
}

func resolveSortDirection(requested string) string {
	switch strings.ToLower(strings.TrimSpace(requested)) {
	case pagination.SortDescending:
		return pagination.SortDescending
	default:
		return pagination.SortAscending
	}
}
