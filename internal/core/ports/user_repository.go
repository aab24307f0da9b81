package ports

import (
	"context"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	Create(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error)
	List(ctx context.Context) ([]domain.UserProfile, error)
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]domain.UserProfile, error)
}
