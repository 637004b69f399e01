// Package session implements refresh-session persistence using PostgreSQL.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
)

// Repo provides refresh-session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, user_id, token_hash, expires_at, revoked_at, created_at`

const createSQL = `
INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + sessionColumns

const getByTokenHashSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE token_hash = $1`

const revokeSQL = `
UPDATE sessions
SET revoked_at = $2
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllForUserSQL = `
UPDATE sessions
SET revoked_at = $2
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM sessions WHERE expires_at < $1`

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanSession(q.QueryRow(ctx, createSQL,
		session.ID, session.UserID, session.TokenHash,
		session.ExpiresAt, session.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "session", session.ID)
	}
	return created, nil
}

// GetByTokenHash returns the session holding the given token hash.
func (r *Repo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(q.QueryRow(ctx, getByTokenHashSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}
	return session, nil
}

// Revoke marks a session unusable. Revoking an already revoked or
// missing session returns ErrNotFound.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, revokeSQL, id, at)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "session", id)
	}
	return nil
}

// RevokeAllForUser revokes every active session of a user.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeAllForUserSQL, userID, at); err != nil {
		return postgres.MapError(err, "session", uuid.Nil)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry and reports how
// many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL, before)
	if err != nil {
		return 0, postgres.MapError(err, "session", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var session domain.Session

	err := row.Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.ExpiresAt, &session.RevokedAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
