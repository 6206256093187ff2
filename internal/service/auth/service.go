// Package auth implements account authentication with email + password.
package auth

import (
	"context"
	"log/slog"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// accountRepo defines the account repository interface needed by the auth service.
type accountRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(email string, role string) (string, error)
	ValidateAccessToken(token string) (email string, role string, err error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	jwt      jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, accounts accountRepo, jwt jwtManager) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		accounts: accounts,
		jwt:      jwt,
	}
}
