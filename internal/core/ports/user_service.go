package ports

import "context"

// RegisterInput carries already-validated registration data.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UserView is the public projection of a user: never the password hash,
// activation token, or inactive flag.
type UserView struct {
	ID       string
	Username string
	Email    string
}

// UserPage is one page of active users plus pagination indicators.
type UserPage struct {
	Content    []UserView
	Page       int
	Size       int
	TotalPages int
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	// Register hashes the password, persists an inactive user with a fresh
	// activation token, and emails the token. A mail transport failure is
	// reported as domain.ErrEmailDelivery; the created record is kept.
	Register(ctx context.Context, input RegisterInput) error
	// Activate looks a user up by exact token match; a miss (wrong token or
	// already activated) is domain.ErrInvalidToken.
	Activate(ctx context.Context, token string) error
	// EmailInUse reports whether any user, active or inactive, has this email.
	EmailInUse(ctx context.Context, email string) (bool, error)
	// ListActive returns active users only. Page and size must already be
	// normalised by the caller.
	ListActive(ctx context.Context, page, size int) (*UserPage, error)
	// GetByID returns a single active user; unknown IDs and inactive users
	// are both domain.ErrUserNotFound.
	GetByID(ctx context.Context, id string) (*UserView, error)
}
