package ports

import (
	"context"

	"github.com/admindesk/user-service/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user record.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Access   []string
	Comment  string
}

// UpdateUserInput is a partial patch: nil pointers (and a nil Access slice)
// leave the corresponding field untouched. An empty Password means the hash
// is kept as is.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Access   []string
	Comment  *string
	Password string
}

// SeedAdminInput configures the startup administrator account.
type SeedAdminInput struct {
	Name     string
	Email    string
	Password string
}

// UserService implements administration of the user collection.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes the record and returns it.
	Delete(ctx context.Context, id string) (*domain.User, error)
	// SeedAdmin creates the configured administrator unless a user with
	// that email already exists. Idempotent.
	SeedAdmin(ctx context.Context, input SeedAdminInput) error
}
