package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hotel_concierge/internal/domain"
)

// AuthService verifies dashboard credentials. Session issuance lives in
// the http adapter; this layer only answers "who is this".
type AuthService struct {
	users domain.UserRepository
}

func NewAuthService(u domain.UserRepository) *AuthService {
	return &AuthService{users: u}
}

// Login returns ErrUnauthenticated for both an unknown email and a bad
// password so the form cannot be used to probe accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthenticated
		}
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.User{}, domain.ErrUnauthenticated
	}
	return u, nil
}

// UserByEmail reloads the account record, e.g. to re-check the
// subscription mid-session.
func (s *AuthService) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.users.GetUserByEmail(ctx, email)
}

// Register creates an account on the basic plan.
func (s *AuthService) Register(ctx context.Context, email, fullName, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		ID:                 uuid.NewString(),
		Email:              email,
		PasswordHash:       string(hash),
		SubscriptionPlan:   "basic",
		SubscriptionStatus: "active",
		AdminLanguage:      domain.DefaultLanguage,
		CreatedAt:          time.Now(),
	}
	if fullName != "" {
		u.FullName = &fullName
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
