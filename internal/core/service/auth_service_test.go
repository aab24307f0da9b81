package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

func registerInput(username string) ports.RegisterInput {
	return ports.RegisterInput{
		Username:        username,
		Password:        "pw",
		Email:           username + "@building.test",
		FullName:        "Resident " + username,
		ApartmentNumber: "B-202",
	}
}

type stubUserRepo struct {
	users map[string]*domain.UserProfile
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.UserProfile)}
}

func cloneProfile(u *domain.UserProfile) *domain.UserProfile {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.UserProfile, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneProfile(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneProfile(user)
	if copy.ID == 0 {
		copy.ID = int64(len(r.users) + 1)
	}
	r.users[copy.Username] = cloneProfile(copy)
	return cloneProfile(copy), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.UserProfile, error) {
	out := make([]domain.UserProfile, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ListByRoles(_ context.Context, roles ...domain.Role) ([]domain.UserProfile, error) {
	var out []domain.UserProfile
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role, active bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo.users[username] = &domain.UserProfile{
		ID:           int64(len(repo.users) + 1),
		Username:     username,
		Email:        username + "@building.test",
		Role:         role,
		IsActive:     active,
		PasswordHash: string(hash),
	}
}

func TestAuthService_Login_TokenResolvesProfile(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bao", "pass123", domain.RoleManager, true)
	svc := NewAuthService(repo, "secret", time.Hour)

	token, err := svc.Login(context.Background(), "bao", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	user, err := svc.CurrentUser(context.Background(), token)
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if user.Username != "bao" || user.Role != domain.RoleManager {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bao", "pass123", domain.RoleResident, true)
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "bao", "nope"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bao", "pass123", domain.RoleResident, false)
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "bao", "pass123"); err != domain.ErrUserInactive {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_CurrentUser_RejectsForgedToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bao", "pass123", domain.RoleResident, true)
	svc := NewAuthService(repo, "secret", time.Hour)
	other := NewAuthService(repo, "other-secret", time.Hour)

	token, err := other.Login(context.Background(), "bao", "pass123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.CurrentUser(context.Background(), token); err != domain.ErrAuthorizationDenied {
		t.Fatalf("expected ErrAuthorizationDenied, got %v", err)
	}
}

func TestAuthService_CurrentUser_RejectsExpiredToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bao", "pass123", domain.RoleResident, true)
	issuer := NewAuthService(repo, "secret", -time.Minute)
	verifier := NewAuthService(repo, "secret", time.Hour)

	token, err := issuer.Login(context.Background(), "bao", "pass123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := verifier.CurrentUser(context.Background(), token); err != domain.ErrAuthorizationDenied {
		t.Fatalf("expected ErrAuthorizationDenied for expired token, got %v", err)
	}
}

func TestAuthService_Register_AlwaysResident(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), registerInput("carol"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleResident {
		t.Fatalf("registration must produce a resident, got %s", user.Role)
	}
	if user.PasswordHash == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if !user.IsActive {
		t.Fatalf("new accounts start active")
	}

	if _, err := svc.Register(context.Background(), registerInput("carol")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
