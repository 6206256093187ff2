package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/account"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/testhelper"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*account.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return account.New(pool), pool
}

func TestRepo_GetByEmail_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	org := testhelper.SeedOrganisation(t, pool)
	seeded := testhelper.SeedAccount(t, pool, org.ID, domain.RoleAdmin)

	got, err := repo.GetByEmail(ctx, seeded.Email)
	if err != nil {
		t.Fatalf("GetByEmail: unexpected error: %v", err)
	}

	if got.ID != seeded.ID {
		t.Errorf("ID mismatch: got %d, want %d", got.ID, seeded.ID)
	}
	if got.OrganisationID != org.ID {
		t.Errorf("OrganisationID mismatch: got %d, want %d", got.OrganisationID, org.ID)
	}
	if got.Role != domain.RoleAdmin {
		t.Errorf("Role mismatch: got %q, want %q", got.Role, domain.RoleAdmin)
	}
}

func TestRepo_GetByEmail_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing-"+uuid.New().String()[:8]+"@example.com")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected error wrapping ErrNotFound, got: %v", err)
	}
}

func TestRepo_Upsert_InsertThenUpdate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	org := testhelper.SeedOrganisation(t, pool)
	email := "upsert-" + uuid.New().String()[:8] + "@example.com"

	first, err := repo.Upsert(ctx, &domain.Account{
		OrganisationID: org.ID,
		Email:          email,
		PasswordHash:   "hash-v1",
		Role:           domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected generated ID after insert")
	}

	second, err := repo.Upsert(ctx, &domain.Account{
		OrganisationID: org.ID,
		Email:          email,
		PasswordHash:   "hash-v2",
		Role:           domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected same ID on repeated upsert: got %d, want %d", second.ID, first.ID)
	}
	if second.PasswordHash != "hash-v2" {
		t.Errorf("PasswordHash not updated: got %q", second.PasswordHash)
	}
	if second.Role != domain.RoleAdmin {
		t.Errorf("Role not updated: got %q", second.Role)
	}
}
