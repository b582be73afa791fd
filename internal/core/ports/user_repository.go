package ports

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
)

// UserRepository persists back-office accounts. Implementations surface
// domain.ErrUserNotFound for missing records and domain.ErrDuplicateSubject
// for userid/username collisions.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUserID(ctx context.Context, userid string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page, size int) ([]domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
