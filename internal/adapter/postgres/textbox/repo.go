// Package textbox implements the TextBox overlay repository using PostgreSQL.
package textbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// Repo provides text-box persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new text-box repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO text_boxes (slide_id, text, font_size, font_color, pos_x, pos_y, width, height, z_index)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, slide_id, text, font_size, font_color, pos_x, pos_y, width, height, z_index`

const listBySlideSQL = `
SELECT id, slide_id, text, font_size, font_color, pos_x, pos_y, width, height, z_index
FROM text_boxes
WHERE slide_id = $1
ORDER BY z_index, id`

const countBySlideSQL = `SELECT count(*) FROM text_boxes WHERE slide_id = $1`

// CreateBatch bulk-inserts text boxes for a persisted slide and returns them
// with generated identities. A nil or empty input is a valid no-op.
func (r *Repo) CreateBatch(ctx context.Context, slideID int64, boxes []domain.TextBox) ([]domain.TextBox, error) {
	if len(boxes) == 0 {
		return []domain.TextBox{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, box := range boxes {
		batch.Queue(createSQL, slideID, box.Text, box.FontSize, ptrStringToPgText(box.FontColor),
			box.PosX, box.PosY, box.Width, box.Height, box.ZIndex)
	}

	br := querier.SendBatch(ctx, batch)
	defer br.Close()

	result := make([]domain.TextBox, 0, len(boxes))
	for range boxes {
		box, err := scanTextBox(br.QueryRow())
		if err != nil {
			return nil, mapError(err, "text_box", slideID)
		}
		result = append(result, *box)
	}

	return result, nil
}

// ListBySlide returns all text boxes of a slide ordered by z-index.
// Returns an empty slice (not nil) when the slide has none.
func (r *Repo) ListBySlide(ctx context.Context, slideID int64) ([]domain.TextBox, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySlideSQL, slideID)
	if err != nil {
		return nil, fmt.Errorf("list text boxes: %w", err)
	}
	defer rows.Close()

	var result []domain.TextBox
	for rows.Next() {
		box, err := scanTextBox(rows)
		if err != nil {
			return nil, fmt.Errorf("list text boxes: %w", err)
		}
		result = append(result, *box)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list text boxes: %w", err)
	}

	if result == nil {
		result = []domain.TextBox{}
	}

	return result, nil
}

// CountBySlide returns the number of text boxes attached to a slide.
func (r *Repo) CountBySlide(ctx context.Context, slideID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countBySlideSQL, slideID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count text boxes: %w", err)
	}

	return count, nil
}

// scanTextBox scans a single row into a domain.TextBox.
func scanTextBox(row pgx.Row) (*domain.TextBox, error) {
	var (
		box       domain.TextBox
		fontColor pgtype.Text
	)

	err := row.Scan(&box.ID, &box.SlideID, &box.Text, &box.FontSize, &fontColor,
		&box.PosX, &box.PosY, &box.Width, &box.Height, &box.ZIndex)
	if err != nil {
		return nil, err
	}

	if fontColor.Valid {
		box.FontColor = &fontColor.String
	}

	return &box, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
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
