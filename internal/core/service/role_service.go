package service

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
)

// RoleService implements role record management. The built-in roles are
// seeded at bootstrap and protected from deletion.
type RoleService struct {
	roles ports.RoleRepository
}

func NewRoleService(roles ports.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) Create(ctx context.Context, name string) (*domain.RoleRecord, error) {
	if !domain.ValidName(name) {
		return nil, domain.ErrInvalidRoleName
	}
	return s.roles.Create(ctx, &domain.RoleRecord{Name: name})
}

func (s *RoleService) List(ctx context.Context) ([]domain.RoleRecord, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.RoleRecord, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if domain.Role(role.Name).Known() {
		return domain.ErrForbidden
	}
	return s.roles.Delete(ctx, id)
}
