// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
)

// Repo provides user account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, role, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const getByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE lower(username) = lower($1)`

const createSQL = `
INSERT INTO users (id, email, username, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const updateSQL = `
UPDATE users
SET email = $2, username = $3, password_hash = $4, updated_at = $5
WHERE id = $1
RETURNING ` + userColumns

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	user, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return user, nil
}

// GetByEmail returns a user by email. Emails are stored lowercased.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	user, err := scanUser(q.QueryRow(ctx, getByEmailSQL, strings.ToLower(email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return user, nil
}

// GetByUsername returns a user by username, case-insensitively.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	user, err := scanUser(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return user, nil
}

// Create inserts a new account.
func (r *Repo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		user.ID, strings.ToLower(user.Email), user.Username,
		user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", user.ID)
	}
	return created, nil
}

// Update rewrites a user's mutable fields.
func (r *Repo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanUser(q.QueryRow(ctx, updateSQL,
		user.ID, strings.ToLower(user.Email), user.Username,
		user.PasswordHash, user.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", user.ID)
	}
	return updated, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		role string
	)

	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.UserRole(role)

	return &user, nil
}
