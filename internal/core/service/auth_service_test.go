package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
	"github.com/taking/backoffice/internal/core/token"
	"github.com/taking/backoffice/internal/pkg/password"
)

const testSecret = "dGVzdC1zaWduaW5nLWtleS1mb3Itc2VydmljZS10ZXN0cw==" // base64

type stubUserRepo struct {
	users map[string]*domain.User // keyed by userid
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.UserID]; exists {
		return nil, domain.ErrDuplicateSubject
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "seq-" + user.UserID
	}
	r.users[copy.UserID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUserID(_ context.Context, userid string) (*domain.User, error) {
	u, ok := r.users[userid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.UserID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for userid, u := range r.users {
		if u.ID == id {
			delete(r.users, userid)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubRoleRepo struct {
	roles map[string]*domain.RoleRecord
}

func newStubRoleRepo(names ...string) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[string]*domain.RoleRecord)}
	for i, name := range names {
		r.roles[name] = &domain.RoleRecord{ID: "role-" + string(rune('a'+i)), Name: name}
	}
	return r
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.RoleRecord) (*domain.RoleRecord, error) {
	if _, exists := r.roles[role.Name]; exists {
		return nil, domain.ErrDuplicateRole
	}
	if role.ID == "" {
		role.ID = "role-" + role.Name
	}
	r.roles[role.Name] = role
	return role, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.RoleRecord, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return role, nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.RoleRecord, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.RoleRecord, error) {
	out := make([]domain.RoleRecord, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id string) error {
	for name, role := range r.roles {
		if role.ID == id {
			delete(r.roles, name)
			return nil
		}
	}
	return domain.ErrRoleNotFound
}

func newTestAuthService(t *testing.T, roles *stubRoleRepo) (*AuthService, *stubUserRepo, *token.Codec) {
	t.Helper()
	codec, err := token.NewCodec(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	users := newStubUserRepo()
	svc := NewAuthService(users, roles, password.NewHasher(4), codec)
	return svc, users, codec
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, users, codec := newTestAuthService(t, newStubRoleRepo("ROLE_ADMIN", "ROLE_USER"))

	accessToken, err := svc.Register(context.Background(), ports.RegisterInput{
		UserID:   "alice01",
		Username: "Alice",
		Email:    "a@x.com",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	claims, err := codec.Decode(accessToken)
	if err != nil {
		t.Fatalf("returned token invalid: %v", err)
	}
	if claims.UserID != "alice01" {
		t.Fatalf("expected token subject alice01, got %q", claims.UserID)
	}
	if claims.Role != string(domain.RoleUser) {
		t.Fatalf("expected role claim ROLE_USER, got %q", claims.Role)
	}

	stored, err := users.FindByUserID(context.Background(), "alice01")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if !stored.Enabled {
		t.Fatalf("expected new account enabled")
	}
	if stored.PasswordHash == "pw123" {
		t.Fatalf("password stored in the clear")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, users, _ := newTestAuthService(t, newStubRoleRepo("ROLE_USER"))

	in := ports.RegisterInput{UserID: "bob01", Username: "Bob", Password: "pw"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrDuplicateSubject) {
		t.Fatalf("expected ErrDuplicateSubject, got %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(users.users))
	}
}

func TestAuthService_Register_DefaultRoleMissing(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubRoleRepo()) // bootstrap never ran

	_, err := svc.Register(context.Background(), ports.RegisterInput{UserID: "carol1", Username: "Carol", Password: "pw"})
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, codec := newTestAuthService(t, newStubRoleRepo("ROLE_USER"))

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		UserID: "alice01", Username: "Alice", Email: "a@x.com", Password: "pw123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice01", "pw123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.UserID != "alice01" || result.UserName != "Alice" || result.UserRole != domain.RoleUser {
		t.Fatalf("unexpected result: %+v", result)
	}

	claims, err := codec.Decode(result.AccessToken)
	if err != nil {
		t.Fatalf("login token invalid: %v", err)
	}
	if claims.UserID != "alice01" {
		t.Fatalf("expected token subject alice01, got %q", claims.UserID)
	}
}

func TestAuthService_Login_NoEnumeration(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubRoleRepo("ROLE_USER"))

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		UserID: "alice01", Username: "Alice", Password: "pw123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown userid must be indistinguishable.
	_, wrongPw := svc.Login(context.Background(), "alice01", "wrong")
	_, noUser := svc.Login(context.Background(), "ghost99", "pw123")
	_, noBody := svc.Login(context.Background(), "", "")

	for name, err := range map[string]error{"wrong password": wrongPw, "unknown userid": noUser, "empty input": noBody} {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
	if wrongPw.Error() != noUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPw, noUser)
	}
}

func TestAuthService_CheckUserID(t *testing.T) {
	svc, _, _ := newTestAuthService(t, newStubRoleRepo("ROLE_USER"))

	if err := svc.CheckUserID(context.Background(), "fresh1"); err != nil {
		t.Fatalf("expected available, got %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{UserID: "fresh1", Username: "F", Password: "pw"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.CheckUserID(context.Background(), "fresh1"); !errors.Is(err, domain.ErrDuplicateSubject) {
		t.Fatalf("expected ErrDuplicateSubject, got %v", err)
	}
}
