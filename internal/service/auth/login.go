package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	Account     *domain.Account
}

// Login authenticates an account with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong,
// without distinguishing the two cases.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(acc.Email, string(acc.Role))
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("email", acc.Email),
		slog.String("role", string(acc.Role)))

	return &LoginResult{AccessToken: token, Account: acc}, nil
}
