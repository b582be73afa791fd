package ports

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
)

// RoleRepository persists role definitions.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.RoleRecord) (*domain.RoleRecord, error)
	FindByName(ctx context.Context, name string) (*domain.RoleRecord, error)
	FindByID(ctx context.Context, id string) (*domain.RoleRecord, error)
	List(ctx context.Context) ([]domain.RoleRecord, error)
	Delete(ctx context.Context, id string) error
}
