package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/admindesk/user-service/internal/core/domain"
	"github.com/admindesk/user-service/internal/core/ports"
)

// AuthService implements password login and principal self-lookup.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues a bearer token embedding the
// principal. Unknown email and wrong password are indistinguishable to the
// caller: both return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info().Str("user_id", user.ID).Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Principal{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Access: user.Access,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, nil
}

// Profile returns the record behind a validated principal. The token can
// outlive the record; that surfaces as domain.ErrUserNotFound.
func (s *AuthService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
