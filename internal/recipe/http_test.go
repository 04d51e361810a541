// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package recipe_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/ctxutil"
	"github.com/lequocan/ladle/internal/platform/sec"
	"github.com/lequocan/ladle/internal/recipe"
	"github.com/lequocan/ladle/pkg/pagination"
)

// fakeRepository is an in-memory recipe.Repository mirroring the Postgres
// ordering and not-found semantics.
type fakeRepository struct {
	recipes []*recipe.Recipe
	nextID  int
}

func newFakeRepository(seed ...*recipe.Recipe) *fakeRepository {
	repository := &fakeRepository{nextID: 1}
	for _, entry := range seed {
		copied := *entry
		copied.ID = repository.nextID
		repository.nextID++
		repository.recipes = append(repository.recipes, &copied)
	}
	return repository
}

func (repository *fakeRepository) FindByID(_ context.Context, id int) (*recipe.Recipe, error) {
	for _, entry := range repository.recipes {
		if entry.ID == id {
			copied := *entry
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Recipe")
}

func (repository *fakeRepository) ListAll(_ context.Context) ([]*recipe.Recipe, error) {
	return repository.filter(func(*recipe.Recipe) bool { return true }), nil
}

func (repository *fakeRepository) SearchByName(_ context.Context, term string) ([]*recipe.Recipe, error) {
	lowered := strings.ToLower(term)
	return repository.filter(func(entry *recipe.Recipe) bool {
		return strings.Contains(strings.ToLower(entry.Name), lowered)
	}), nil
}

func (repository *fakeRepository) SearchByIngredient(_ context.Context, term string) ([]*recipe.Recipe, error) {
	lowered := strings.ToLower(term)
	return repository.filter(func(entry *recipe.Recipe) bool {
		joined := strings.ToLower(strings.Join(entry.Ingredients, " "))
		return strings.Contains(joined, lowered)
	}), nil
}

func (repository *fakeRepository) SearchPaged(ctx context.Context, term string, opts pagination.Options) (pagination.Page[*recipe.Recipe], error) {
	opts = opts.Normalize()

	matched, _ := repository.SearchByName(ctx, term)
	sort.SliceStable(matched, func(i, j int) bool {
		less := matched[i].ID < matched[j].ID
		if opts.SortBy == recipe.SortByName {
			if matched[i].Name != matched[j].Name {
				less = matched[i].Name < matched[j].Name
			}
		}
		if opts.SortDir == pagination.SortDescending {
			return !less
		}
		return less
	})

	start := opts.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + opts.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return pagination.New(opts.Page, opts.PageSize, len(matched), matched[start:end]), nil
}

func (repository *fakeRepository) Save(_ context.Context, entry *recipe.Recipe) error {
	if entry.ID == 0 {
		entry.ID = repository.nextID
		repository.nextID++
		copied := *entry
		repository.recipes = append(repository.recipes, &copied)
		return nil
	}

	for i, existing := range repository.recipes {
		if existing.ID == entry.ID {
			copied := *entry
			repository.recipes[i] = &copied
			return nil
		}
	}
	return apperr.NotFound("Recipe")
}

func (repository *fakeRepository) Delete(_ context.Context, id int) error {
	for i, existing := range repository.recipes {
		if existing.ID == id {
			repository.recipes = append(repository.recipes[:i], repository.recipes[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Recipe")
}

func (repository *fakeRepository) filter(keep func(*recipe.Recipe) bool) []*recipe.Recipe {
	matched := []*recipe.Recipe{}
	for _, entry := range repository.recipes {
		if keep(entry) {
			copied := *entry
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

func newTestRouter(repository recipe.Repository) chi.Router {
	service := recipe.NewService(repository, slog.Default())
	handler := recipe.NewHandler(service)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func seedCatalog() *fakeRepository {
	return newFakeRepository(
		&recipe.Recipe{Name: "Beef Pho", Ingredients: []string{"beef", "rice noodles", "star anise"}},
		&recipe.Recipe{Name: "Chicken Curry", Ingredients: []string{"chicken", "coconut milk", "garlic"}},
		&recipe.Recipe{Name: "Garlic Bread", Ingredients: []string{"bread", "garlic", "butter"}},
	)
}

type listEnvelope struct {
	Data []recipe.Recipe `json:"data"`
}

type pageEnvelope struct {
	Data pagination.Page[recipe.Recipe] `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

/*
TestListRecipes_Modes exercises the four retrieval modes of GET /recipes end
to end through the router.
*/
func TestListRecipes_Modes(t *testing.T) {
	router := newTestRouter(seedCatalog())

	get := func(t *testing.T, target string) *httptest.ResponseRecorder {
		t.Helper()
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
		return recorder
	}

	t.Run("full_listing_ordered_by_id", func(t *testing.T) {
		recorder := get(t, "/recipes")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Data, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{body.Data[0].ID, body.Data[1].ID, body.Data[2].ID})
	})

	t.Run("name_search_is_substring_case_insensitive", func(t *testing.T) {
		recorder := get(t, "/recipes?name=cURr")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Chicken Curry", body.Data[0].Name)
	})

	t.Run("name_search_with_no_match_is_empty_array_not_error", func(t *testing.T) {
		recorder := get(t, "/recipes?name=sushi")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Empty(t, body.Data)
	})

	t.Run("ingredient_search_matches_ingredient_text", func(t *testing.T) {
		recorder := get(t, "/recipes?ingredient=garlic")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Data, 2)
		assert.Equal(t, "Chicken Curry", body.Data[0].Name)
		assert.Equal(t, "Garlic Bread", body.Data[1].Name)
	})

	t.Run("name_beats_paging", func(t *testing.T) {
		recorder := get(t, "/recipes?name=pho&page=5&pageSize=1")
		require.Equal(t, http.StatusOK, recorder.Code)

		// Resolved as a name search: a plain array, not a page envelope.
		var body listEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Beef Pho", body.Data[0].Name)
	})

	t.Run("paged_query_returns_window_with_totals", func(t *testing.T) {
		recorder := get(t, "/recipes?page=2&pageSize=1")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body pageEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Data.Page)
		assert.Equal(t, 3, body.Data.TotalPages)
		assert.Equal(t, 3, body.Data.TotalItems)
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, 2, body.Data.Items[0].ID)
	})

	t.Run("paged_query_past_the_end_is_not_found", func(t *testing.T) {
		recorder := get(t, "/recipes?page=9&pageSize=10")
		require.Equal(t, http.StatusNotFound, recorder.Code)

		var body errorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "No recipes found", body.Error)
	})

	t.Run("malformed_paging_falls_back_to_full_listing", func(t *testing.T) {
		recorder := get(t, "/recipes?page=zero&pageSize=10")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Len(t, body.Data, 3)
	})
}

/*
TestRecipeCRUD covers fetch, create, update, and delete through the router,
including the authentication gate on creation.
*/
func TestRecipeCRUD(t *testing.T) {
	t.Run("get_by_id", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/recipes/1", nil))
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data recipe.Recipe `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Beef Pho", body.Data.Name)
	})

	t.Run("get_unknown_id_is_not_found", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/recipes/99", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("get_non_integer_id_is_validation_error", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/recipes/soup", nil))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("create_requires_session", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		payload := `{"name":"Ratatouille","instructions":"Slice and bake.","ingredients":["zucchini","eggplant"]}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/recipes", strings.NewReader(payload)))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("create_with_session_assigns_id_and_slug", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		payload := `{"name":"Crème Brûlée","instructions":"Torch the top.","ingredients":["cream","sugar"]}`
		request := httptest.NewRequest(http.MethodPost, "/recipes", strings.NewReader(payload))
		request = request.WithContext(ctxutil.WithChef(request.Context(), &sec.Identity{ChefID: 1, Username: "julia"}))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Data recipe.Recipe `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, 4, body.Data.ID)
		assert.Equal(t, "creme-brulee", body.Data.Slug)
	})

	t.Run("create_without_ingredients_is_validation_error", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		payload := `{"name":"Air Soup","instructions":"","ingredients":[]}`
		request := httptest.NewRequest(http.MethodPost, "/recipes", strings.NewReader(payload))
		request = request.WithContext(ctxutil.WithChef(request.Context(), &sec.Identity{ChefID: 1, Username: "julia"}))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("update_replaces_whole_record_and_preserves_id", func(t *testing.T) {
		repository := seedCatalog()
		router := newTestRouter(repository)

		payload := `{"name":"Beef Pho Special","instructions":"Simmer longer.","ingredients":["beef","noodles"]}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/recipes/1", strings.NewReader(payload)))
		require.Equal(t, http.StatusOK, recorder.Code)

		stored, err := repository.FindByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Beef Pho Special", stored.Name)
		assert.Equal(t, []string{"beef", "noodles"}, stored.Ingredients)
	})

	t.Run("update_unknown_id_is_not_found", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		payload := `{"name":"Ghost Dish","instructions":"","ingredients":["air"]}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/recipes/99", strings.NewReader(payload)))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("delete_then_get_is_not_found", func(t *testing.T) {
		router := newTestRouter(seedCatalog())

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/recipes/2", nil))
		require.Equal(t, http.StatusNoContent, recorder.Code)

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/recipes/2", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/recipes/2", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
