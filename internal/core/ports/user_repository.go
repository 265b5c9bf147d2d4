package ports

import (
	"context"

	"github.com/accountly/account-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with the store-assigned ID.
	// Returns domain.ErrEmailInUse when the email collides with an existing user.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail matches active and inactive users alike.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByActivationToken(ctx context.Context, token string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindActive returns active users in insertion order, skipping skip
	// records and returning at most limit.
	FindActive(ctx context.Context, skip, limit int) ([]*domain.User, error)
	CountActive(ctx context.Context) (int64, error)
	// Activate marks the user active and clears its activation token.
	Activate(ctx context.Context, id string) error
}
