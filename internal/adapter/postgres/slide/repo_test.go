package slide_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/slide"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/testhelper"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*slide.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return slide.New(pool), pool
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	org := testhelper.SeedOrganisation(t, pool)

	got, err := repo.Create(ctx, &domain.Slide{
		OrganisationID: org.ID,
		Title:          "Welcome " + uuid.New().String()[:8],
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID == 0 {
		t.Error("expected generated ID")
	}
	if got.OrganisationID != org.ID {
		t.Errorf("OrganisationID mismatch: got %d, want %d", got.OrganisationID, org.ID)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestRepo_Create_DuplicateTitleSameOrganisation(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	org := testhelper.SeedOrganisation(t, pool)
	title := "Duplicate " + uuid.New().String()[:8]

	if _, err := repo.Create(ctx, &domain.Slide{OrganisationID: org.ID, Title: title}); err != nil {
		t.Fatalf("Create first slide: %v", err)
	}

	_, err := repo.Create(ctx, &domain.Slide{OrganisationID: org.ID, Title: title})
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Create_SameTitleDifferentOrganisations(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	orgA := testhelper.SeedOrganisation(t, pool)
	orgB := testhelper.SeedOrganisation(t, pool)
	title := "Shared " + uuid.New().String()[:8]

	if _, err := repo.Create(ctx, &domain.Slide{OrganisationID: orgA.ID, Title: title}); err != nil {
		t.Fatalf("Create in orgA: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.Slide{OrganisationID: orgB.ID, Title: title}); err != nil {
		t.Fatalf("Create in orgB should succeed: %v", err)
	}
}

func TestRepo_Create_UnknownOrganisation(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Slide{OrganisationID: 999999999, Title: "Orphan"})
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByOrganisationAndTitle(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	org := testhelper.SeedOrganisation(t, pool)
	seeded := testhelper.SeedSlide(t, pool, org.ID, "Lookup "+uuid.New().String()[:8])

	got, err := repo.GetByOrganisationAndTitle(ctx, org.ID, seeded.Title)
	if err != nil {
		t.Fatalf("GetByOrganisationAndTitle: unexpected error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("ID mismatch: got %d, want %d", got.ID, seeded.ID)
	}

	_, err = repo.GetByOrganisationAndTitle(ctx, org.ID, "no-such-title")
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByID_ScopedToOrganisation(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	orgA := testhelper.SeedOrganisation(t, pool)
	orgB := testhelper.SeedOrganisation(t, pool)
	seeded := testhelper.SeedSlide(t, pool, orgA.ID, "Scoped "+uuid.New().String()[:8])

	got, err := repo.GetByID(ctx, orgA.ID, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID own organisation: %v", err)
	}
	if got.Title != seeded.Title {
		t.Errorf("Title mismatch: got %q, want %q", got.Title, seeded.Title)
	}

	// The same slide must be invisible from another organisation.
	_, err = repo.GetByID(ctx, orgB.ID, seeded.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_ListByOrganisation(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	org := testhelper.SeedOrganisation(t, pool)
	other := testhelper.SeedOrganisation(t, pool)

	testhelper.SeedSlide(t, pool, org.ID, "B slide")
	testhelper.SeedSlide(t, pool, org.ID, "A slide")
	testhelper.SeedSlide(t, pool, other.ID, "Foreign slide")

	got, err := repo.ListByOrganisation(ctx, org.ID, domain.SlideFilter{SortBy: "title"})
	if err != nil {
		t.Fatalf("ListByOrganisation: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(got))
	}
	if got[0].Title != "A slide" || got[1].Title != "B slide" {
		t.Errorf("unexpected title order: %q, %q", got[0].Title, got[1].Title)
	}
	for _, s := range got {
		if s.OrganisationID != org.ID {
			t.Errorf("slide %d leaked from organisation %d", s.ID, s.OrganisationID)
		}
	}
}

func TestRepo_ListByOrganisation_Empty(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	org := testhelper.SeedOrganisation(t, pool)

	got, err := repo.ListByOrganisation(ctx, org.ID, domain.SlideFilter{})
	if err != nil {
		t.Fatalf("ListByOrganisation: unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no slides, got %d", len(got))
	}
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
