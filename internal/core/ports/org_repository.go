package ports

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
)

// OrgRepository persists organizations.
type OrgRepository interface {
	Create(ctx context.Context, org *domain.Org) (*domain.Org, error)
	FindByName(ctx context.Context, name string) (*domain.Org, error)
	FindByID(ctx context.Context, id string) (*domain.Org, error)
	List(ctx context.Context, page, size int) ([]domain.Org, int64, error)
	Update(ctx context.Context, org *domain.Org) (*domain.Org, error)
	Delete(ctx context.Context, id string) error
}
