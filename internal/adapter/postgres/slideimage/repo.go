// Package slideimage implements the SlideImage overlay repository using
// PostgreSQL. Bulk writes go through a single pgx batch.
package slideimage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// Repo provides slide-image persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new slide-image repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO slide_images (slide_id, url, pos_x, pos_y, width, height, z_index)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, slide_id, url, pos_x, pos_y, width, height, z_index`

const listBySlideSQL = `
SELECT id, slide_id, url, pos_x, pos_y, width, height, z_index
FROM slide_images
WHERE slide_id = $1
ORDER BY z_index, id`

const countBySlideSQL = `SELECT count(*) FROM slide_images WHERE slide_id = $1`

// CreateBatch bulk-inserts images for a persisted slide and returns them with
// generated identities. A nil or empty input is a valid no-op: it returns an
// empty slice and touches nothing.
func (r *Repo) CreateBatch(ctx context.Context, slideID int64, images []domain.SlideImage) ([]domain.SlideImage, error) {
	if len(images) == 0 {
		return []domain.SlideImage{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, img := range images {
		batch.Queue(createSQL, slideID, img.URL, img.PosX, img.PosY, img.Width, img.Height, img.ZIndex)
	}

	br := querier.SendBatch(ctx, batch)
	defer br.Close()

	result := make([]domain.SlideImage, 0, len(images))
	for range images {
		img, err := scanSlideImage(br.QueryRow())
		if err != nil {
			return nil, mapError(err, "slide_image", slideID)
		}
		result = append(result, *img)
	}

	return result, nil
}

// ListBySlide returns all images of a slide ordered by z-index.
// Returns an empty slice (not nil) when the slide has none.
func (r *Repo) ListBySlide(ctx context.Context, slideID int64) ([]domain.SlideImage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySlideSQL, slideID)
	if err != nil {
		return nil, fmt.Errorf("list slide images: %w", err)
	}
	defer rows.Close()

	var result []domain.SlideImage
	for rows.Next() {
		img, err := scanSlideImage(rows)
		if err != nil {
			return nil, fmt.Errorf("list slide images: %w", err)
		}
		result = append(result, *img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slide images: %w", err)
	}

	if result == nil {
		result = []domain.SlideImage{}
	}

	return result, nil
}

// CountBySlide returns the number of images attached to a slide.
func (r *Repo) CountBySlide(ctx context.Context, slideID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countBySlideSQL, slideID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count slide images: %w", err)
	}

	return count, nil
}

// scanSlideImage scans a single row into a domain.SlideImage.
func scanSlideImage(row pgx.Row) (*domain.SlideImage, error) {
	var img domain.SlideImage

	err := row.Scan(&img.ID, &img.SlideID, &img.URL, &img.PosX, &img.PosY, &img.Width, &img.Height, &img.ZIndex)
	if err != nil {
		return nil, err
	}

	return &img, nil
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
