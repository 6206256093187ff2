// Package bootstrap seeds demo organisations and accounts.
//
// Seeding is idempotent: every write is an upsert keyed on the natural
// unique column, so running it against a populated database changes nothing
// but the logo and password hash. It never runs unless explicitly enabled
// via config or invoked through the seed command.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/gruppe10/inflowscreen-backend/internal/config"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

type organisationRepo interface {
	Upsert(ctx context.Context, org *domain.Organisation) (*domain.Organisation, error)
}

type accountRepo interface {
	Upsert(ctx context.Context, acc *domain.Account) (*domain.Account, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Seeder writes the demo dataset.
type Seeder struct {
	log           *slog.Logger
	organisations organisationRepo
	accounts      accountRepo
	tx            txManager
	hashCost      int
}

// NewSeeder creates a new demo-data seeder.
func NewSeeder(
	logger *slog.Logger,
	organisations organisationRepo,
	accounts accountRepo,
	tx txManager,
	authCfg config.AuthConfig,
) *Seeder {
	return &Seeder{
		log:           logger.With("component", "seeder"),
		organisations: organisations,
		accounts:      accounts,
		tx:            tx,
		hashCost:      authCfg.PasswordHashCost,
	}
}

// demoAccount pairs an account with the name of its organisation.
type demoAccount struct {
	email   string
	role    domain.Role
	orgName string
}

var demoOrganisations = []domain.Organisation{
	{Name: "Fysioterapi i Centrum", LogoURL: "/images/slides/corgi.JPG"},
	{Name: "Gruppe 10", LogoURL: "/images/logos/gruppe10logo.png"},
}

var demoAccounts = []demoAccount{
	{email: "gruppe1010@hotmail.com", role: domain.RoleAdmin, orgName: "Gruppe 10"},
	{email: "fystest@hotmail.com", role: domain.RoleUser, orgName: "Fysioterapi i Centrum"},
}

// Run seeds the demo organisations and accounts in one transaction.
// password is the shared plaintext password for all demo accounts.
func (s *Seeder) Run(ctx context.Context, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		orgIDs := make(map[string]int64, len(demoOrganisations))
		for _, org := range demoOrganisations {
			persisted, upsertErr := s.organisations.Upsert(txCtx, &org)
			if upsertErr != nil {
				return fmt.Errorf("upsert organisation %q: %w", org.Name, upsertErr)
			}
			orgIDs[persisted.Name] = persisted.ID
		}

		for _, acc := range demoAccounts {
			orgID, ok := orgIDs[acc.orgName]
			if !ok {
				return fmt.Errorf("account %q references unknown organisation %q", acc.email, acc.orgName)
			}

			_, upsertErr := s.accounts.Upsert(txCtx, &domain.Account{
				OrganisationID: orgID,
				Email:          acc.email,
				PasswordHash:   string(hash),
				Role:           acc.role,
			})
			if upsertErr != nil {
				return fmt.Errorf("upsert account %q: %w", acc.email, upsertErr)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "demo data seeded",
		"organisations", len(demoOrganisations),
		"accounts", len(demoAccounts),
	)

	return nil
}
