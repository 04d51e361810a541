// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package recipe_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lequocan/ladle/internal/recipe"
	"github.com/lequocan/ladle/pkg/pagination"
)

/*
TestResolveListQuery_Precedence verifies the fixed parameter precedence:
name beats ingredient, ingredient beats paging, and a malformed paging pair
falls through to the full listing.
*/
func TestResolveListQuery_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		wantMode recipe.Mode
		wantTerm string
	}{
		{"no_params_full_listing", "", recipe.ModeAll, ""},
		{"name_only", "name=curry", recipe.ModeByName, "curry"},
		{"ingredient_only", "ingredient=garlic", recipe.ModeByIngredient, "garlic"},
		{"name_beats_ingredient", "name=curry&ingredient=garlic", recipe.ModeByName, "curry"},
		{"name_beats_paging", "name=curry&page=2&pageSize=5", recipe.ModeByName, "curry"},
		{"ingredient_beats_paging", "ingredient=garlic&page=1&pageSize=10", recipe.ModeByIngredient, "garlic"},
		{"paging_pair", "page=2&pageSize=5", recipe.ModePaged, ""},
		{"paging_with_term", "page=1&pageSize=10&term=soup", recipe.ModePaged, "soup"},
		{"page_without_size_full_listing", "page=2", recipe.ModeAll, ""},
		{"size_without_page_full_listing", "pageSize=5", recipe.ModeAll, ""},
		{"non_numeric_page_full_listing", "page=abc&pageSize=5", recipe.ModeAll, ""},
		{"zero_page_full_listing", "page=0&pageSize=5", recipe.ModeAll, ""},
		{"negative_size_full_listing", "page=1&pageSize=-3", recipe.ModeAll, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.rawQuery)
			assert.NoError(t, err)

			query := recipe.ResolveListQuery(values)

			assert.Equal(t, tt.wantMode, query.Mode)
			assert.Equal(t, tt.wantTerm, query.Term)
		})
	}
}

/*
TestResolveListQuery_PagedDefaults verifies sort defaults and normalization
for the paged mode.
*/
func TestResolveListQuery_PagedDefaults(t *testing.T) {
	t.Run("defaults_to_id_ascending", func(t *testing.T) {
		values, _ := url.ParseQuery("page=1&pageSize=10")
		query := recipe.ResolveListQuery(values)

		assert.Equal(t, recipe.ModePaged, query.Mode)
		assert.Equal(t, recipe.SortByID, query.Page.SortBy)
		assert.Equal(t, pagination.SortAscending, query.Page.SortDir)
	})

	t.Run("explicit_name_descending", func(t *testing.T) {
		values, _ := url.ParseQuery("page=3&pageSize=20&sortBy=name&sortDirection=desc")
		query := recipe.ResolveListQuery(values)

		assert.Equal(t, 3, query.Page.Page)
		assert.Equal(t, 20, query.Page.PageSize)
		assert.Equal(t, recipe.SortByName, query.Page.SortBy)
		assert.Equal(t, pagination.SortDescending, query.Page.SortDir)
	})

	t.Run("unknown_sort_column_falls_back_to_id", func(t *testing.T) {
		values, _ := url.ParseQuery("page=1&pageSize=10&sortBy=passwordhash")
		query := recipe.ResolveListQuery(values)

		assert.Equal(t, recipe.SortByID, query.Page.SortBy)
	})

	t.Run("unknown_direction_falls_back_to_asc", func(t *testing.T) {
		values, _ := url.ParseQuery("page=1&pageSize=10&sortDirection=sideways")
		query := recipe.ResolveListQuery(values)

		assert.Equal(t, pagination.SortAscending, query.Page.SortDir)
	})

	t.Run("oversized_page_size_is_clamped", func(t *testing.T) {
		values, _ := url.ParseQuery("page=1&pageSize=10000")
		query := recipe.ResolveListQuery(values)

		assert.Equal(t, pagination.MaxPageSize, query.Page.PageSize)
	})
}
