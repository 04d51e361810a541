// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package ingredient

import (
	"context"
	"fmt"

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

// NewPostgresRepository creates an ingredient repository backed by the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) queryIngredients(ctx context.Context, query string, args ...any) ([]*Ingredient, error) {
	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []*Ingredient{}
	for rows.Next() {
		var ingredient Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.Name); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, &ingredient)
	}
	return ingredients, rows.Err()
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Ingredient, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s = $1",
		schema.KitchenIngredient.ID, schema.KitchenIngredient.Name,
		schema.KitchenIngredient.Table, schema.KitchenIngredient.ID,
	)

	var ingredient Ingredient
	err := repository.pool.QueryRow(ctx, query, id).Scan(&ingredient.ID, &ingredient.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_find_failed")
	}
	return &ingredient, nil
}

func (repository *PostgresRepository) ListAll(ctx context.Context) ([]*Ingredient, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s ORDER BY %s ASC",
		schema.KitchenIngredient.ID, schema.KitchenIngredient.Name,
		schema.KitchenIngredient.Table, schema.KitchenIngredient.ID,
	)

	ingredients, err := repository.queryIngredients(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_list_failed")
	}
	return ingredients, nil
}

func (repository *PostgresRepository) SearchByName(ctx context.Context, term string) ([]*Ingredient, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s ILIKE $1 ORDER BY %s ASC",
		schema.KitchenIngredient.ID, schema.KitchenIngredient.Name,
		schema.KitchenIngredient.Table, schema.KitchenIngredient.Name, schema.KitchenIngredient.ID,
	)

	ingredients, err := repository.queryIngredients(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_search_failed")
	}
	return ingredients, nil
}

func (repository *PostgresRepository) SearchPaged(ctx context.Context, term string, opts pagination.Options) (pagination.Page[*Ingredient], error) {
	opts = opts.Normalize()

	filter := ""
	args := []any{}
	if term != "" {
		filter = fmt.Sprintf(" WHERE %s ILIKE $1", schema.KitchenIngredient.Name)
		args = append(args, "%"+term+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", schema.KitchenIngredient.Table, filter)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return pagination.Empty[*Ingredient](opts), dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_count_failed")
	}

	direction := "ASC"
	if opts.SortDir == pagination.SortDescending {
		direction = "DESC"
	}
	column := schema.KitchenIngredient.ID
	if opts.SortBy == "name" {
		column = schema.KitchenIngredient.Name
	}

	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s%s ORDER BY %s %s, %s ASC LIMIT $%d OFFSET $%d",
		schema.KitchenIngredient.ID, schema.KitchenIngredient.Name,
		schema.KitchenIngredient.Table, filter,
		column, direction, schema.KitchenIngredient.ID,
		len(args)+1, len(args)+2,
	)
	args = append(args, opts.PageSize, opts.Offset())

	ingredients, err := repository.queryIngredients(ctx, query, args...)
	if err != nil {
		return pagination.Empty[*Ingredient](opts), dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_page_failed")
	}
	return pagination.New(opts.Page, opts.PageSize, total, ingredients), nil
}

func (repository *PostgresRepository) Save(ctx context.Context, ingredient *Ingredient) error {
	if ingredient.ID == 0 {
		query := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES ($1) RETURNING %s",
			schema.KitchenIngredient.Table, schema.KitchenIngredient.Name, schema.KitchenIngredient.ID,
		)

		if err := repository.pool.QueryRow(ctx, query, ingredient.Name).Scan(&ingredient.ID); err != nil {
			return dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_insert_failed")
		}
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1 WHERE %s = $2",
		schema.KitchenIngredient.Table, schema.KitchenIngredient.Name, schema.KitchenIngredient.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, ingredient.Name, ingredient.ID)
	if err != nil {
		return dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_update_failed")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Ingredient")
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		schema.KitchenIngredient.Table, schema.KitchenIngredient.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "Ingredient", "postgres_ingredient_repo_delete_failed")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Ingredient")
	}
	return nil
}
