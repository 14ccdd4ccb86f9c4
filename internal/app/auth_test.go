package app_test

import (
	"context"
	"errors"
	"testing"

	"hotel_concierge/internal/app"
	"hotel_concierge/internal/domain"
)

type fakeUsers struct {
	users []domain.User
}

func (f *fakeUsers) CreateUser(ctx context.Context, u domain.User) error {
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUsers) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func TestRegisterThenLogin(t *testing.T) {
	users := &fakeUsers{}
	svc := app.NewAuthService(users)

	u, err := svc.Register(context.Background(), "owner@example.com", "Ana Horvat", "swordfish")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "swordfish" {
		t.Fatalf("password stored in plain text")
	}
	if u.SubscriptionPlan != "basic" || u.SubscriptionStatus != "active" {
		t.Fatalf("unexpected defaults: %+v", u)
	}

	got, err := svc.Login(context.Background(), "owner@example.com", "swordfish")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("wrong user: %+v", got)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	users := &fakeUsers{}
	svc := app.NewAuthService(users)
	if _, err := svc.Register(context.Background(), "owner@example.com", "", "swordfish"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), "owner@example.com", "wrong")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := app.NewAuthService(&fakeUsers{})
	_, err := svc.Login(context.Background(), "nobody@example.com", "x")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
