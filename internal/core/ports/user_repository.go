package ports

import (
	"context"

	"github.com/admindesk/user-service/internal/core/domain"
)

// UserRepository is the persistence contract for user records. Uniqueness of
// email (case-insensitive) is enforced by the driver: Create and Update
// return domain.ErrEmailTaken on a collision, and lookups return
// domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) (*domain.User, error)
}
