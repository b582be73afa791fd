package ports

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
)

type RoleService interface {
	Create(ctx context.Context, name string) (*domain.RoleRecord, error)
	List(ctx context.Context) ([]domain.RoleRecord, error)
	Get(ctx context.Context, id string) (*domain.RoleRecord, error)
	Delete(ctx context.Context, id string) error
}
