// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/passport/internal/platform/apperr"
)

// # User Repository
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] values here, so the service layer never
// sees driver internals.

// PostgresUserStore implements the [UserStore] interface using pgx.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a new PostgreSQL implementation of the [UserStore].
func NewUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

/*
Create persists a new user record into the users.account table.

Description: The INSERT itself is the arbiter of uniqueness — there is no
read-before-write. A unique-constraint violation on name surfaces as a
client-safe Conflict error, which makes concurrent registration of the same
name safe: exactly one insert commits.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate name, or connectivity errors
*/
func (store *PostgresUserStore) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, name, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		user.ID,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
			return apperr.Conflict("Name is already taken")
		}
		return fmt.Errorf("postgres_user_store_create_failed: %w", err)
	}

	return nil
}

/*
FindByName retrieves a user record by their unique name.

Description: Standard lookup by canonical name for authentication.

Parameters:
  - context: context.Context
  - name: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresUserStore) FindByName(context context.Context, name string) (*User, error) {
	const query = `
		SELECT id, name, passwordhash, createdat, updatedat
		FROM users.account
		WHERE name = $1`

	user := &User{}
	err := store.pool.QueryRow(context, query, name).Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_store_find_by_name_failed: %w", err)
	}

	return user, nil
}

/*
FindByID retrieves a user record by their unique ID.

Description: Primary key resolution for user accounts.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresUserStore) FindByID(context context.Context, id string) (*User, error) {
	const query = `
		SELECT id, name, passwordhash, createdat, updatedat
		FROM users.account
		WHERE id = $1`

	user := &User{}
	err := store.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_store_find_by_id_failed: %w", err)
	}

	return user, nil
}
