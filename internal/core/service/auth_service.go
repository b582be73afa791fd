package service

import (
	"context"
	"errors"
	"time"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
	"github.com/taking/backoffice/internal/core/token"
	"github.com/taking/backoffice/internal/pkg/password"
)

// AuthService implements registration, login and userid availability checks.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher *password.Hasher
	codec  *token.Codec
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, hasher *password.Hasher, codec *token.Codec) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, codec: codec}
}

// Register creates an enabled account with the default role and returns a
// freshly minted token for it. The default role must have been seeded at
// bootstrap; its absence is a configuration error, not a user error.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	if err := s.CheckUserID(ctx, in.UserID); err != nil {
		return "", err
	}

	if _, err := s.roles.FindByName(ctx, string(domain.RoleUser)); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return "", domain.ErrConfiguration
		}
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		UserID:       in.UserID,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	return s.codec.Encode(created.UserID, created.Username, string(created.Role))
}

// Login verifies the credential pair and returns the token plus subject
// details. A missing payload, an unknown userid and a wrong password all
// yield the same error so responses cannot confirm which userids exist.
func (s *AuthService) Login(ctx context.Context, userid, pw string) (*ports.LoginResult, error) {
	if userid == "" || pw == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUserID(ctx, userid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(pw, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.codec.Encode(user.UserID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		AccessToken: accessToken,
		UserID:      user.UserID,
		UserName:    user.Username,
		UserRole:    user.Role,
	}, nil
}

// CheckUserID reports availability of a userid.
func (s *AuthService) CheckUserID(ctx context.Context, userid string) error {
	_, err := s.users.FindByUserID(ctx, userid)
	switch {
	case err == nil:
		return domain.ErrDuplicateSubject
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return err
	}
}
