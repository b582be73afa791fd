package ports

import (
	"context"

	"github.com/taking/backoffice/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	UserID   string
	Username string
	Email    string
	Password string
}

// LoginResult is the expanded login response: the token plus the subject
// details a client needs without decoding it.
type LoginResult struct {
	AccessToken string      `json:"accessToken"`
	UserID      string      `json:"userId"`
	UserName    string      `json:"userName"`
	UserRole    domain.Role `json:"userRole"`
}

// AuthService is the authenticator: it verifies credentials and mints
// access tokens.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, userid, password string) (*LoginResult, error)
	// CheckUserID returns domain.ErrDuplicateSubject when the userid is
	// taken, nil when it is available.
	CheckUserID(ctx context.Context, userid string) error
}
