package ports

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
)

// UserUpdateInput carries the mutable profile fields. Nil pointers leave
// the stored value unchanged.
type UserUpdateInput struct {
	Username *string
	Email    *string
	Enabled  *bool
	Orgs     []string
}

type UserService interface {
	List(ctx context.Context, page, size int) ([]domain.User, int64, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
