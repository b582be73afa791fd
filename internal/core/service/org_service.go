package service

import (
	"context"
	"time"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
)

// OrgService implements organization record management.
type OrgService struct {
	orgs ports.OrgRepository
}

func NewOrgService(orgs ports.OrgRepository) *OrgService {
	return &OrgService{orgs: orgs}
}

func (s *OrgService) Create(ctx context.Context, in ports.OrgInput) (*domain.Org, error) {
	org := &domain.Org{
		Name:      in.Name,
		BizNum:    in.BizNum,
		Contact:   in.Contact,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
	return s.orgs.Create(ctx, org)
}

func (s *OrgService) List(ctx context.Context, page, size int) ([]domain.Org, int64, error) {
	page, size = clampPage(page, size)
	return s.orgs.List(ctx, page, size)
}

func (s *OrgService) Get(ctx context.Context, id string) (*domain.Org, error) {
	return s.orgs.FindByID(ctx, id)
}

func (s *OrgService) Update(ctx context.Context, id string, in ports.OrgInput) (*domain.Org, error) {
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		org.Name = in.Name
	}
	if in.BizNum != "" {
		org.BizNum = in.BizNum
	}
	if in.Contact != "" {
		org.Contact = in.Contact
	}

	return s.orgs.Update(ctx, org)
}

func (s *OrgService) Delete(ctx context.Context, id string) error {
	return s.orgs.Delete(ctx, id)
}
