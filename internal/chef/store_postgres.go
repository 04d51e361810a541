// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package chef

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lequocan/ladle/internal/platform/database/schema"
	"github.com/lequocan/ladle/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new chef record into the users.chef table.

Description: Inserts the account and hydrates the generated ID and creation
timestamp back into the entity.

Parameters:
  - context: context.Context
  - chef: *Chef (Entity to persist)

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, chef *Chef) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s`,
		schema.UserChef.Table, schema.UserChef.Username, schema.UserChef.PasswordHash, schema.UserChef.CreatedAt,
		schema.UserChef.ID,
	)

	if chef.CreatedAt.IsZero() {
		chef.CreatedAt = time.Now()
	}

	err := repository.pool.QueryRow(context, query,
		chef.Username,
		chef.PasswordHash,
		chef.CreatedAt,
	).Scan(&chef.ID)

	if err != nil {
		return dberr.Wrap(err, "Chef", "postgres_chef_repo_create_failed")
	}

	return nil
}

/*
FindByUsername retrieves a chef record by their unique username.

Description: Exact, case-sensitive lookup used by registration conflict checks
and by login.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Chef: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*Chef, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.UserChef.ID, schema.UserChef.Username, schema.UserChef.PasswordHash, schema.UserChef.CreatedAt,
		schema.UserChef.Table, schema.UserChef.Username,
	)

	chef := &Chef{}
	err := repository.pool.QueryRow(context, query, username).Scan(
		&chef.ID,
		&chef.Username,
		&chef.PasswordHash,
		&chef.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Chef", "postgres_chef_repo_find_by_username_failed")
	}

	return chef, nil
}

/*
FindByID retrieves a chef record by their unique ID.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Chef: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Chef, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.UserChef.ID, schema.UserChef.Username, schema.UserChef.PasswordHash, schema.UserChef.CreatedAt,
		schema.UserChef.Table, schema.UserChef.ID,
	)

	chef := &Chef{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&chef.ID,
		&chef.Username,
		&chef.PasswordHash,
		&chef.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Chef", "postgres_chef_repo_find_by_id_failed")
	}

	return chef, nil
}
