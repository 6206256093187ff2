package textbox_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/testhelper"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/textbox"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*textbox.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return textbox.New(pool), pool
}

func seedSlide(t *testing.T, pool *pgxpool.Pool) domain.Slide {
	t.Helper()
	org := testhelper.SeedOrganisation(t, pool)
	return testhelper.SeedSlide(t, pool, org.ID, "TextBoxes "+uuid.New().String()[:8])
}

func ptrStr(s string) *string {
	return &s
}

func TestRepo_CreateBatch_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	s := seedSlide(t, pool)

	boxes := []domain.TextBox{
		{Text: "Opening hours", FontSize: 24, FontColor: ptrStr("#ffffff"), PosX: 10, PosY: 10, Width: 300, Height: 60, ZIndex: 1},
		{Text: "Closed on Sundays", FontSize: 16, PosX: 10, PosY: 80, Width: 300, Height: 40, ZIndex: 2},
	}

	got, err := repo.CreateBatch(ctx, s.ID, boxes)
	if err != nil {
		t.Fatalf("CreateBatch: unexpected error: %v", err)
	}

	if len(got) != len(boxes) {
		t.Fatalf("expected %d text boxes, got %d", len(boxes), len(got))
	}
	for i, box := range got {
		if box.ID == 0 {
			t.Errorf("box[%d]: expected generated ID", i)
		}
		if box.SlideID != s.ID {
			t.Errorf("box[%d]: SlideID mismatch: got %d, want %d", i, box.SlideID, s.ID)
		}
		if box.Text != boxes[i].Text {
			t.Errorf("box[%d]: Text mismatch: got %q, want %q", i, box.Text, boxes[i].Text)
		}
	}

	if got[0].FontColor == nil || *got[0].FontColor != "#ffffff" {
		t.Errorf("box[0]: FontColor mismatch: got %v", got[0].FontColor)
	}
	if got[1].FontColor != nil {
		t.Errorf("box[1]: expected nil FontColor, got %q", *got[1].FontColor)
	}
}

func TestRepo_CreateBatch_Empty(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	s := seedSlide(t, pool)

	got, err := repo.CreateBatch(ctx, s.ID, []domain.TextBox{})
	if err != nil {
		t.Fatalf("CreateBatch with empty input must not error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}

	count, err := repo.CountBySlide(ctx, s.ID)
	if err != nil {
		t.Fatalf("CountBySlide: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows written, got %d", count)
	}
}

func TestRepo_CreateBatch_UnknownSlide(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.CreateBatch(ctx, 999999999, []domain.TextBox{
		{Text: "Orphan", FontSize: 12, Width: 10, Height: 10},
	})
	if err == nil {
		t.Fatal("expected error for unknown slide, got nil")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected error wrapping ErrNotFound, got: %v", err)
	}
}

func TestRepo_CreateBatch_ZeroFontSize(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	s := seedSlide(t, pool)

	_, err := repo.CreateBatch(ctx, s.ID, []domain.TextBox{
		{Text: "tiny", FontSize: 0},
	})
	if err == nil {
		t.Fatal("expected error for zero font size, got nil")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected error wrapping ErrValidation, got: %v", err)
	}
}

func TestRepo_ListBySlide_OrderedByZIndex(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	s := seedSlide(t, pool)

	_, err := repo.CreateBatch(ctx, s.ID, []domain.TextBox{
		{Text: "front", FontSize: 12, ZIndex: 9, Width: 10, Height: 10},
		{Text: "back", FontSize: 12, ZIndex: 1, Width: 10, Height: 10},
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.ListBySlide(ctx, s.ID)
	if err != nil {
		t.Fatalf("ListBySlide: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 text boxes, got %d", len(got))
	}
	if got[0].Text != "back" || got[1].Text != "front" {
		t.Errorf("unexpected z-index order: %q, %q", got[0].Text, got[1].Text)
	}
}
