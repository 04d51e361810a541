// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package recipe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/database/schema"
	"github.com/lequocan/ladle/internal/platform/dberr"
	"github.com/lequocan/ladle/pkg/pagination"
)

// PostgresRepository implements Repository on a pgx connection pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a recipe repository backed by the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var recipeColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
	schema.KitchenRecipe.ID,
	schema.KitchenRecipe.Name,
	schema.KitchenRecipe.Slug,
	schema.KitchenRecipe.Instructions,
	schema.KitchenRecipe.Ingredients,
	schema.KitchenRecipe.CreatedAt,
	schema.KitchenRecipe.UpdatedAt,
)

func scanRecipe(row pgx.Row) (*Recipe, error) {
	var recipe Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Slug,
		&recipe.Instructions,
		&recipe.Ingredients,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	return &recipe, nil
}

func (repository *PostgresRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]*Recipe, error) {
	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []*Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Recipe, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		recipeColumns, schema.KitchenRecipe.Table, schema.KitchenRecipe.ID,
	)

	recipe, err := scanRecipe(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Recipe", "postgres_recipe_repo_find_failed")
	}
	return recipe, nil
}

func (repository *PostgresRepository) ListAll(ctx context.Context) ([]*Recipe, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s ASC",
		recipeColumns, schema.KitchenRecipe.Table, schema.KitchenRecipe.ID,
	)

	recipes, err := repository.queryRecipes(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Recipe", "postgres_recipe_repo_list_failed")
	}
	return recipes, nil
}

func (repository *PostgresRepository) SearchByName(ctx context.Context, term string) ([]*Recipe, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ILIKE $1 ORDER BY %s ASC",
		recipeColumns, schema.KitchenRecipe.Table, schema.KitchenRecipe.Name, schema.KitchenRecipe.ID,
	)

	recipes, err := repository.queryRecipes(ctx, query, containsPattern(term))
	if err != nil {
		return nil, dberr.Wrap(err, "Recipe", "postgres_recipe_repo_search_name_failed")
	}
	return recipes, nil
}

func (repository *PostgresRepository) SearchByIngredient(ctx context.Context, term string) ([]*Recipe, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE array_to_string(%s, ' ') ILIKE $1 ORDER BY %s ASC",
		recipeColumns, schema.KitchenRecipe.Table, schema.KitchenRecipe.Ingredients, schema.KitchenRecipe.ID,
	)

	recipes, err := repository.queryRecipes(ctx, query, containsPattern(term))
	if err != nil {
		return nil, dberr.Wrap(err, "Recipe", "postgres_recipe_repo_search_ingredient_failed")
	}
	return recipes, nil
}

func (repository *PostgresRepository) SearchPaged(ctx context.Context, term string, opts pagination.Options) (pagination.Page[*Recipe], error) {
	opts = opts.Normalize()

	filter := ""
	args := []any{}
	if term != "" {
		filter = fmt.Sprintf(" WHERE %s ILIKE $1", schema.KitchenRecipe.Name)
		args = append(args, containsPattern(term))
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", schema.KitchenRecipe.Table, filter)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return pagination.Empty[*Recipe](opts), dberr.Wrap(err, "Recipe", "postgres_recipe_repo_count_failed")
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s %s, %s ASC LIMIT $%d OFFSET $%d",
		recipeColumns,
		schema.KitchenRecipe.Table,
		filter,
		sortColumn(opts.SortBy),
		sortDirection(opts.SortDir),
		schema.KitchenRecipe.ID,
		len(args)+1,
		len(args)+2,
	)
	args = append(args, opts.PageSize, opts.Offset())

	recipes, err := repository.queryRecipes(ctx, query, args...)
	if err != nil {
		return pagination.Empty[*Recipe](opts), dberr.Wrap(err, "Recipe", "postgres_recipe_repo_page_failed")
	}
	return pagination.New(opts.Page, opts.PageSize, total, recipes), nil
}

func (repository *PostgresRepository) Save(ctx context.Context, recipe *Recipe) error {
	if recipe.ID == 0 {
		query := fmt.Sprintf(
			"INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s, %s, %s",
			schema.KitchenRecipe.Table,
			schema.KitchenRecipe.Name,
			schema.KitchenRecipe.Slug,
			schema.KitchenRecipe.Instructions,
			schema.KitchenRecipe.Ingredients,
			schema.KitchenRecipe.ID,
			schema.KitchenRecipe.CreatedAt,
			schema.KitchenRecipe.UpdatedAt,
		)

		err := repository.pool.QueryRow(ctx, query,
			recipe.Name, recipe.Slug, recipe.Instructions, recipe.Ingredients,
		).Scan(&recipe.ID, &recipe.CreatedAt, &recipe.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, "Recipe", "postgres_recipe_repo_insert_failed")
		}
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = NOW() WHERE %s = $5 RETURNING %s, %s",
		schema.KitchenRecipe.Table,
		schema.KitchenRecipe.Name,
		schema.KitchenRecipe.Slug,
		schema.KitchenRecipe.Instructions,
		schema.KitchenRecipe.Ingredients,
		schema.KitchenRecipe.UpdatedAt,
		schema.KitchenRecipe.ID,
		schema.KitchenRecipe.CreatedAt,
		schema.KitchenRecipe.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		recipe.Name, recipe.Slug, recipe.Instructions, recipe.Ingredients, recipe.ID,
	).Scan(&recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Recipe", "postgres_recipe_repo_update_failed")
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		schema.KitchenRecipe.Table, schema.KitchenRecipe.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "Recipe", "postgres_recipe_repo_delete_failed")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Recipe")
	}
	return nil
}

// containsPattern builds a case-insensitive substring match pattern,
// escaping LIKE metacharacters in the user-supplied term.
func containsPattern(term string) string {
	escaped := make([]rune, 0, len(term))
	for _, r := range term {
		if r == '%' || r == '_' || r == '\\' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return "%" + string(escaped) + "%"
}

func sortColumn(requested string) string {
	switch requested {
	case SortByName:
		return schema.KitchenRecipe.Name
	default:
		return schema.KitchenRecipe.ID
	}
}

func sortDirection(requested string) string {
	if requested == pagination.SortDescending {
		return "DESC"
	}
	return "ASC"
}
