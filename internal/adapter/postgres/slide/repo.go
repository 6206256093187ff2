// Package slide implements the Slide repository using PostgreSQL.
// Create is a single INSERT .. RETURNING: the generated identity comes back
// with the insert, so no read-back step is needed, and the unique constraint
// on (organisation_id, title) is the authoritative conflict signal.
package slide

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// Repo provides slide persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new slide repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO slides (organisation_id, title)
VALUES ($1, $2)
RETURNING id, organisation_id, title, created_at`

const getByOrganisationAndTitleSQL = `
SELECT id, organisation_id, title, created_at
FROM slides
WHERE organisation_id = $1 AND title = $2`

const getByIDSQL = `
SELECT id, organisation_id, title, created_at
FROM slides
WHERE id = $1 AND organisation_id = $2`

// Create inserts a new slide and returns the persisted row including its
// generated identity. Returns domain.ErrAlreadyExists when the organisation
// already has a slide with the same title.
func (r *Repo) Create(ctx context.Context, slide *domain.Slide) (*domain.Slide, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	persisted, err := scanSlide(querier.QueryRow(ctx, createSQL, slide.OrganisationID, slide.Title))
	if err != nil {
		return nil, mapError(err, "slide", 0)
	}

	return persisted, nil
}

// GetByOrganisationAndTitle returns the slide with the given title within one
// organisation. Returns domain.ErrNotFound if absent. Reflects writes issued
// earlier in the same transaction.
func (r *Repo) GetByOrganisationAndTitle(ctx context.Context, orgID int64, title string) (*domain.Slide, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSlide(querier.QueryRow(ctx, getByOrganisationAndTitleSQL, orgID, title))
	if err != nil {
		return nil, mapError(err, "slide", 0)
	}

	return s, nil
}

// GetByID returns a slide by primary key scoped to an organisation.
// Returns domain.ErrNotFound if the slide does not exist or belongs to
// another organisation.
func (r *Repo) GetByID(ctx context.Context, orgID, slideID int64) (*domain.Slide, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSlide(querier.QueryRow(ctx, getByIDSQL, slideID, orgID))
	if err != nil {
		return nil, mapError(err, "slide", slideID)
	}

	return s, nil
}

// ListByOrganisation returns the organisation's slides according to the
// filter. Returns an empty slice (not nil) when the organisation has none.
func (r *Repo) ListByOrganisation(ctx context.Context, orgID int64, filter domain.SlideFilter) ([]*domain.Slide, error) {
	filter.Normalize()

	query, args, err := sq.
		Select("id", "organisation_id", "title", "created_at").
		From("slides").
		Where(sq.Eq{"organisation_id": orgID}).
		OrderBy(filter.SortBy + " " + filter.SortOrder).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()

	result, err := scanSlides(rows)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}

	return result, nil
}

// scanSlide scans a single row into a domain.Slide.
func scanSlide(row pgx.Row) (*domain.Slide, error) {
	var (
		id        int64
		orgID     int64
		title     string
		createdAt time.Time
	)

	if err := row.Scan(&id, &orgID, &title, &createdAt); err != nil {
		return nil, err
	}

	return &domain.Slide{
		ID:             id,
		OrganisationID: orgID,
		Title:          title,
		CreatedAt:      createdAt,
	}, nil
}

// scanSlides scans multiple rows into []*domain.Slide.
func scanSlides(rows pgx.Rows) ([]*domain.Slide, error) {
	var result []*domain.Slide
	for rows.Next() {
		var (
			id        int64
			orgID     int64
			title     string
			createdAt time.Time
		)

		if err := rows.Scan(&id, &orgID, &title, &createdAt); err != nil {
			return nil, err
		}

		result = append(result, &domain.Slide{
			ID:             id,
			OrganisationID: orgID,
			Title:          title,
			CreatedAt:      createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Slide{}
	}

	return result, nil
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
