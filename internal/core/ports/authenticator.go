package ports

import (
	"context"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

// Authenticator is the credential collaborator the session store drives.
// Login exchanges credentials for a bearer token; CurrentUser resolves the
// profile the token belongs to. CurrentUser must be called with the token
// returned by the immediately preceding Login, never a stale one.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (*domain.UserProfile, error)
	Register(ctx context.Context, input RegisterInput) (*domain.UserProfile, error)
}

// RegisterInput carries the fields a resident supplies at sign-up. Role is
// fixed to resident by the service; staff accounts are provisioned out of
// band.
type RegisterInput struct {
	Username        string
	Password        string
	Email           string
	FullName        string
	Phone           string
	ApartmentNumber string
	Building        string
}
