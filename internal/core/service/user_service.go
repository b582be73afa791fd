package service

import (
	"context"
	"time"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// clampPage normalizes pagination query values.
func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// UserService implements back-office user record management.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, page, size int) ([]domain.User, int64, error) {
	page, size = clampPage(page, size)
	return s.users.List(ctx, page, size)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies the provided profile fields; unset fields keep their
// stored value. Credentials and role are not mutable here.
func (s *UserService) Update(ctx context.Context, id string, in ports.UserUpdateInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Enabled != nil {
		user.Enabled = *in.Enabled
	}
	if in.Orgs != nil {
		user.Orgs = in.Orgs
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
