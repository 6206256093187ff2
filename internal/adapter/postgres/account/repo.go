// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByEmailSQL = `
SELECT id, organisation_id, email, password_hash, role, created_at
FROM accounts
WHERE email = $1`

const upsertSQL = `
INSERT INTO accounts (organisation_id, email, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE
SET organisation_id = EXCLUDED.organisation_id,
    password_hash   = EXCLUDED.password_hash,
    role            = EXCLUDED.role
RETURNING id, organisation_id, email, password_hash, role, created_at`

// GetByEmail returns the account with the given email.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	acc, err := scanAccount(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, mapError(err, "account", 0)
	}

	return acc, nil
}

// Upsert inserts an account or updates an existing one with the same email.
// Idempotent: safe for repeated bootstrap seeding.
func (r *Repo) Upsert(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	persisted, err := scanAccount(querier.QueryRow(ctx, upsertSQL,
		acc.OrganisationID, acc.Email, acc.PasswordHash, string(acc.Role)))
	if err != nil {
		return nil, mapError(err, "account", 0)
	}

	return persisted, nil
}

// scanAccount scans a single row into a domain.Account.
func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		id           int64
		orgID        int64
		email        string
		passwordHash string
		role         string
		createdAt    time.Time
	)

	if err := row.Scan(&id, &orgID, &email, &passwordHash, &role, &createdAt); err != nil {
		return nil, err
	}

	return &domain.Account{
		ID:             id,
		OrganisationID: orgID,
		Email:          email,
		PasswordHash:   passwordHash,
		Role:           domain.Role(role),
		CreatedAt:      createdAt,
	}, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %d: %w", entity, id, err)
}
