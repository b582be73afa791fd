package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/token"
)

const testSecret = "bWlkZGxld2FyZS10ZXN0LXNpZ25pbmcta2V5" // base64

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.UserID] = u
	return u, nil
}

func (r *stubUserRepo) FindByUserID(_ context.Context, userid string) (*domain.User, error) {
	u, ok := r.users[userid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, _ string) error { return nil }

func testCodec(t *testing.T, ttl time.Duration) *token.Codec {
	t.Helper()
	c, err := token.NewCodec(testSecret, ttl)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func repoWith(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.UserID] = u
	}
	return r
}

func alice() *domain.User {
	return &domain.User{ID: "seq-1", UserID: "alice01", Username: "Alice", Role: domain.RoleUser, Enabled: true}
}

func runAuth(t *testing.T, codec *token.Codec, repo *stubUserRepo, header string) (echo.Context, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(codec, repo, zerolog.Nop())
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return c, err, called
}

func TestAuth_NoToken_ProceedsAnonymous(t *testing.T) {
	c, err, called := runAuth(t, testCodec(t, time.Hour), repoWith(), "")
	if err != nil {
		t.Fatalf("anonymous request must not error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if _, ok := IdentityFrom(c); ok {
		t.Fatalf("no identity expected for anonymous request")
	}
}

func TestAuth_WrongScheme_ProceedsAnonymous(t *testing.T) {
	_, err, called := runAuth(t, testCodec(t, time.Hour), repoWith(), "Basic dXNlcjpwdw==")
	if err != nil {
		t.Fatalf("non-bearer scheme must not error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_ValidToken_EstablishesIdentity(t *testing.T) {
	codec := testCodec(t, time.Hour)
	user := alice()
	signed, err := codec.Encode(user.UserID, user.Username, string(user.Role))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	c, err, called := runAuth(t, codec, repoWith(user), "Bearer "+signed)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}

	id, ok := IdentityFrom(c)
	if !ok {
		t.Fatalf("identity not established")
	}
	if id.UserID != "alice01" || id.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestAuth_InvalidToken_Aborts(t *testing.T) {
	c, err, called := runAuth(t, testCodec(t, time.Hour), repoWith(alice()), "Bearer not-a-token")
	if err == nil {
		t.Fatalf("expected authentication error")
	}
	if called {
		t.Fatalf("next must not run on invalid token")
	}
	if err != domain.ErrAuthenticationFailed {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
	if _, ok := IdentityFrom(c); ok {
		t.Fatalf("identity must be cleared")
	}
}

func TestAuth_ExpiredToken_Aborts(t *testing.T) {
	// Mint with a codec whose TTL already elapsed relative to validation.
	short := testCodec(t, time.Millisecond)
	user := alice()
	signed, err := short.Encode(user.UserID, user.Username, string(user.Role))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, err, called := runAuth(t, short, repoWith(user), "Bearer "+signed)
	if err != domain.ErrAuthenticationFailed {
		t.Fatalf("expected ErrAuthenticationFailed for expired token, got %v", err)
	}
	if called {
		t.Fatalf("next must not run")
	}
}

func TestAuth_StaleSubject_Aborts(t *testing.T) {
	codec := testCodec(t, time.Hour)
	signed, err := codec.Encode("ghost99", "Ghost", string(domain.RoleUser))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Valid signature, but the subject was deleted after issuance.
	_, err, called := runAuth(t, codec, repoWith(), "Bearer "+signed)
	if err != domain.ErrAuthenticationFailed {
		t.Fatalf("expected ErrAuthenticationFailed for stale subject, got %v", err)
	}
	if called {
		t.Fatalf("next must not run")
	}
}

func TestAuth_DisabledAccount_Aborts(t *testing.T) {
	codec := testCodec(t, time.Hour)
	user := alice()
	signed, err := codec.Encode(user.UserID, user.Username, string(user.Role))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	user.Enabled = false

	_, err, called := runAuth(t, codec, repoWith(user), "Bearer "+signed)
	if err != domain.ErrAuthenticationFailed {
		t.Fatalf("expected ErrAuthenticationFailed for disabled account, got %v", err)
	}
	if called {
		t.Fatalf("next must not run")
	}
}

func TestAuth_IdentityDoesNotLeakAcrossRequests(t *testing.T) {
	codec := testCodec(t, time.Hour)
	user := alice()
	signed, err := codec.Encode(user.UserID, user.Username, string(user.Role))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	repo := repoWith(user)

	if c, _, _ := runAuth(t, codec, repo, "Bearer "+signed); c != nil {
		if _, ok := IdentityFrom(c); !ok {
			t.Fatalf("first request should authenticate")
		}
	}

	// A fresh request without a token sees no identity from the previous one.
	c, err, _ := runAuth(t, codec, repo, "")
	if err != nil {
		t.Fatalf("anonymous request errored: %v", err)
	}
	if _, ok := IdentityFrom(c); ok {
		t.Fatalf("identity leaked across requests")
	}
}
