package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/repo"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/service"
)

func TestRegisterAndValidate(t *testing.T) {
	svc := service.NewUserService(repo.NewMemUserRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "User@Example.com", "secret", "  Tester  ")
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "user@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.DisplayName != "Tester" {
		t.Errorf("display name not trimmed: %q", u.DisplayName)
	}
	if u.PasswordHash == "secret" || u.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	got, err := svc.ValidateCredentials(ctx, "user@example.com", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Error("validate returned the wrong user")
	}

	if _, err := svc.ValidateCredentials(ctx, "user@example.com", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := svc.ValidateCredentials(ctx, "ghost@example.com", "secret"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", err)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := service.NewUserService(repo.NewMemUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "pw", "Name"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("empty email: got %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.c", "", "Name"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("empty password: got %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.c", "pw", "   "); !errors.Is(err, service.ErrDisplayNameRequired) {
		t.Errorf("blank display name: got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := service.NewUserService(repo.NewMemUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.c", "pw", "A"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, "A@B.C", "pw", "B"); !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("duplicate email: got %v", err)
	}
}
