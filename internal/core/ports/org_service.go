package ports

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
)

// OrgInput carries the fields of an organization create or update request.
type OrgInput struct {
	Name    string
	BizNum  string
	Contact string
}

type OrgService interface {
	Create(ctx context.Context, in OrgInput) (*domain.Org, error)
	List(ctx context.Context, page, size int) ([]domain.Org, int64, error)
	Get(ctx context.Context, id string) (*domain.Org, error)
	Update(ctx context.Context, id string, in OrgInput) (*domain.Org, error)
	Delete(ctx context.Context, id string) error
}
