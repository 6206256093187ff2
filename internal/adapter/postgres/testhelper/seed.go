package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedOrganisation creates an organisation with a unique name.
// Returns the persisted domain.Organisation.
func SeedOrganisation(t *testing.T, pool *pgxpool.Pool) domain.Organisation {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	org := domain.Organisation{
		Name:    "Org " + suffix,
		LogoURL: "/images/logos/" + suffix + ".png",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO organisations (name, logo_url) VALUES ($1, $2) RETURNING id, created_at`,
		org.Name, org.LogoURL,
	).Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedOrganisation insert: %v", err)
	}

	return org
}

// SeedAccount creates an account with a unique email inside the given
// organisation. The password hash is a fixed bcrypt stub; use auth helpers in
// service tests when real verification matters.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, orgID int64, role domain.Role) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	acc := domain.Account{
		OrganisationID: orgID,
		Email:          "account-" + suffix + "@example.com",
		PasswordHash:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:           role,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO accounts (organisation_id, email, password_hash, role)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		acc.OrganisationID, acc.Email, acc.PasswordHash, string(acc.Role),
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return acc
}

// SeedSlide creates a bare slide (no overlays) with the given title.
func SeedSlide(t *testing.T, pool *pgxpool.Pool, orgID int64, title string) domain.Slide {
	t.Helper()
	ctx := context.Background()

	slide := domain.Slide{
		OrganisationID: orgID,
		Title:          title,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO slides (organisation_id, title) VALUES ($1, $2) RETURNING id, created_at`,
		slide.OrganisationID, slide.Title,
	).Scan(&slide.ID, &slide.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSlide insert: %v", err)
	}

	return slide
}
