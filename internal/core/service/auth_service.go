package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

// AuthService implements the authentication collaborator: credential
// exchange, token verification and resident registration.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login exchanges a username/password pair for a signed bearer token. The
// profile is not returned here: callers fetch it with CurrentUser using the
// token they just obtained, which keeps the two-step login sequence honest.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", domain.ErrUserInactive
	}

	return s.generateToken(user)
}

// CurrentUser resolves the profile a bearer token belongs to. Any defect in
// the token (bad signature, expiry, unknown subject) is reported as
// ErrAuthorizationDenied so callers treat it as a session-invalidation event.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.UserProfile, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrAuthorizationDenied
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrAuthorizationDenied
	}

	user, err := s.repo.FindByUsername(ctx, sub)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrAuthorizationDenied
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAuthorizationDenied
	}

	return user, nil
}

// Register creates a resident account. Staff roles are provisioned out of
// band, so the role is always RoleResident here.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.UserProfile, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.UserProfile{
		Username:        input.Username,
		Email:           input.Email,
		FullName:        input.FullName,
		Phone:           input.Phone,
		ApartmentNumber: input.ApartmentNumber,
		Building:        input.Building,
		Role:            domain.RoleResident,
		IsActive:        true,
		PasswordHash:    string(hash),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return s.repo.Create(ctx, user)
}

func (s *AuthService) generateToken(user *domain.UserProfile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
