// Package bootstrap seeds the records the system cannot run without: the
// built-in roles, the default organization, and the initial admin account.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
	"github.com/taking/backoffice/internal/pkg/password"
)

const (
	defaultOrgName = "DEFAULT"

	adminUserID   = "admin"
	adminPassword = "admin" // TODO: take the initial admin password from configuration
)

// Initializer performs the idempotent startup seeding. Running it against an
// already-seeded database changes nothing.
type Initializer struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	orgs   ports.OrgRepository
	hasher *password.Hasher
	log    zerolog.Logger
}

func NewInitializer(users ports.UserRepository, roles ports.RoleRepository, orgs ports.OrgRepository, hasher *password.Hasher, log zerolog.Logger) *Initializer {
	return &Initializer{users: users, roles: roles, orgs: orgs, hasher: hasher, log: log}
}

// Run ensures ROLE_ADMIN, ROLE_USER, the DEFAULT org and the admin account
// exist. Login is impossible before this has succeeded at least once.
func (i *Initializer) Run(ctx context.Context) error {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleUser} {
		if err := i.ensureRole(ctx, role); err != nil {
			return err
		}
	}
	if err := i.ensureDefaultOrg(ctx); err != nil {
		return err
	}
	return i.ensureAdminUser(ctx)
}

func (i *Initializer) ensureRole(ctx context.Context, role domain.Role) error {
	_, err := i.roles.FindByName(ctx, string(role))
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return fmt.Errorf("look up role %s: %w", role, err)
	}

	if _, err := i.roles.Create(ctx, &domain.RoleRecord{Name: string(role)}); err != nil {
		return fmt.Errorf("seed role %s: %w", role, err)
	}
	i.log.Info().Str("role", string(role)).Msg("seeded role")
	return nil
}

func (i *Initializer) ensureDefaultOrg(ctx context.Context) error {
	_, err := i.orgs.FindByName(ctx, defaultOrgName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrOrgNotFound) {
		return fmt.Errorf("look up default org: %w", err)
	}

	org := &domain.Org{
		Name:      defaultOrgName,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := i.orgs.Create(ctx, org); err != nil {
		return fmt.Errorf("seed default org: %w", err)
	}
	i.log.Info().Str("org", defaultOrgName).Msg("seeded organization")
	return nil
}

func (i *Initializer) ensureAdminUser(ctx context.Context) error {
	_, err := i.users.FindByUserID(ctx, adminUserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := i.hasher.Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &domain.User{
		UserID:       adminUserID,
		Username:     "Administrator",
		Email:        "admin@localhost",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := i.users.Create(ctx, user); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	i.log.Info().Str("userid", adminUserID).Msg("seeded admin account")
	return nil
}
