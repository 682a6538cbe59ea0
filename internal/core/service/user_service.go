package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/admindesk/user-service/internal/core/domain"
	"github.com/admindesk/user-service/internal/core/ports"
)

// UserService administers the user collection: CRUD plus startup seeding.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create hashes the password, assigns a fresh ID, and stores the record.
// A case-insensitive email collision comes back as domain.ErrEmailTaken.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	access := input.Access
	if access == nil {
		access = []string{}
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Access:       access,
		Comment:      input.Comment,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// Update applies a partial patch. Untouched fields keep their stored
// values; a supplied password is re-hashed, and an email change re-checks
// uniqueness against every other record.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Access != nil {
		user.Access = input.Access
	}
	if input.Comment != nil {
		user.Comment = *input.Comment
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", removed.ID).Msg("user deleted")
	return removed, nil
}

// SeedAdmin creates the configured administrator account unless a user with
// that email already exists. Safe to run on every boot.
func (s *UserService) SeedAdmin(ctx context.Context, input ports.SeedAdminInput) error {
	if input.Email == "" || input.Password == "" {
		return nil
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	name := input.Name
	if name == "" {
		name = "Admin"
	}

	created, err := s.Create(ctx, ports.CreateUserInput{
		Name:     name,
		Email:    input.Email,
		Password: input.Password,
		Access:   []string{domain.RoleAdmin},
		Comment:  "Seeded admin user",
	})
	if err != nil {
		// Lost a create race against another boot path; the account exists.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("seed admin created")
	return nil
}
