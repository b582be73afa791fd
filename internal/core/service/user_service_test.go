package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taking/backoffice/internal/core/domain"
	"github.com/taking/backoffice/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, userid string) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		UserID:   userid,
		Username: "Name-" + userid,
		Role:     domain.RoleUser,
		Enabled:  true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)
	u := seedUser(t, repo, "alice01")

	newName := "Alice Renamed"
	updated, err := svc.Update(context.Background(), u.ID, ports.UserUpdateInput{Username: &newName})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Username != newName {
		t.Fatalf("username not updated: %q", updated.Username)
	}
	if !updated.Enabled {
		t.Fatalf("unset field must keep stored value")
	}

	disabled := false
	updated, err = svc.Update(context.Background(), u.ID, ports.UserUpdateInput{Enabled: &disabled})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Enabled {
		t.Fatalf("expected account disabled")
	}
	if updated.Username != newName {
		t.Fatalf("earlier update lost: %q", updated.Username)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	if _, err := svc.Update(context.Background(), "missing", ports.UserUpdateInput{}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)
	u := seedUser(t, repo, "bob01")

	if err := svc.Delete(context.Background(), u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByUserID(context.Background(), "bob01"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, defaultPageSize},
		{-3, 10, 1, 10},
		{2, 500, 2, maxPageSize},
		{1, 20, 1, 20},
	}
	for _, tc := range cases {
		p, s := clampPage(tc.page, tc.size)
		if p != tc.wantPage || s != tc.wantSize {
			t.Fatalf("clampPage(%d,%d) = (%d,%d), want (%d,%d)", tc.page, tc.size, p, s, tc.wantPage, tc.wantSize)
		}
	}
}
