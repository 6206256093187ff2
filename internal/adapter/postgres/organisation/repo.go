// Package organisation implements the Organisation repository using
// PostgreSQL. Resolution by account email is the tenant-isolation boundary:
// every slide operation is scoped to the organisation returned here.
package organisation

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

// Repo provides organisation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new organisation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByAccountEmailSQL = `
SELECT o.id, o.name, o.logo_url, o.created_at
FROM organisations o
JOIN accounts a ON a.organisation_id = o.id
WHERE a.email = $1`

const getByIDSQL = `
SELECT id, name, logo_url, created_at
FROM organisations
WHERE id = $1`

const upsertSQL = `
INSERT INTO organisations (name, logo_url)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET logo_url = EXCLUDED.logo_url
RETURNING id, name, logo_url, created_at`

// GetByAccountEmail resolves the organisation owning the account with the
// given email. Returns domain.ErrNotFound when no such account exists.
func (r *Repo) GetByAccountEmail(ctx context.Context, email string) (*domain.Organisation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	org, err := scanOrganisation(querier.QueryRow(ctx, getByAccountEmailSQL, email))
	if err != nil {
		return nil, mapError(err, "organisation", 0)
	}

	return org, nil
}

// GetByID returns an organisation by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Organisation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	org, err := scanOrganisation(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "organisation", id)
	}

	return org, nil
}

// Upsert inserts an organisation or, when one with the same name exists,
// updates its logo. Idempotent: safe for repeated bootstrap seeding.
func (r *Repo) Upsert(ctx context.Context, org *domain.Organisation) (*domain.Organisation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	persisted, err := scanOrganisation(querier.QueryRow(ctx, upsertSQL, org.Name, org.LogoURL))
	if err != nil {
		return nil, mapError(err, "organisation", 0)
	}

	return persisted, nil
}

// scanOrganisation scans a single row into a domain.Organisation.
func scanOrganisation(row pgx.Row) (*domain.Organisation, error) {
	var (
		id        int64
		name      string
		logoURL   string
		createdAt time.Time
	)

	if err := row.Scan(&id, &name, &logoURL, &createdAt); err != nil {
		return nil, err
	}

	return &domain.Organisation{
		ID:        id,
		Name:      name,
		LogoURL:   logoURL,
		CreatedAt: createdAt,
	}, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
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

	// Everything else: wrap with context
	return fmt.Errorf("%s %d: %w", entity, id, err)
}
