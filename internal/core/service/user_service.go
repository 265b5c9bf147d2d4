package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accountly/account-api/internal/pkg/metrics"
	"github.com/accountly/account-api/internal/core/domain"
	"github.com/accountly/account-api/internal/core/ports"
)

// UserService implements registration, activation, and listing of accounts.
type UserService struct {
	repo   ports.UserRepository
	mailer ports.ActivationMailer
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, mailer ports.ActivationMailer, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, mailer: mailer, logger: logger}
}

// Register persists a new inactive user and emails its activation token.
// Input is expected to have passed field validation already.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:        input.Username,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Inactive:        true,
		ActivationToken: generateActivationToken(domain.ActivationTokenLength),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	// The record is deliberately not rolled back when delivery fails; the
	// caller maps domain.ErrEmailDelivery to its own failure response.
	if err := s.mailer.SendActivation(ctx, created.Email, created.ActivationToken); err != nil {
		metrics.ActivationEmailsTotal.WithLabelValues("failed").Inc()
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("activation email failed")
		return fmt.Errorf("%w: %v", domain.ErrEmailDelivery, err)
	}
	metrics.ActivationEmailsTotal.WithLabelValues("sent").Inc()

	return nil
}

// Activate flips the user matching token to active and clears the token.
func (s *UserService) Activate(ctx context.Context, token string) error {
	user, err := s.repo.FindByActivationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.ActivationFailuresTotal.Inc()
			return domain.ErrInvalidToken
		}
		return err
	}

	if err := s.repo.Activate(ctx, user.ID); err != nil {
		return err
	}
	metrics.ActivationsTotal.Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("account activated")
	return nil
}

// EmailInUse reports whether any user, active or inactive, has this email.
func (s *UserService) EmailInUse(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListActive returns one page of active users with pagination indicators.
func (s *UserService) ListActive(ctx context.Context, page, size int) (*ports.UserPage, error) {
	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.FindActive(ctx, page*size, size)
	if err != nil {
		return nil, err
	}

	content := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		content = append(content, toView(u))
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &ports.UserPage{
		Content:    content,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}, nil
}

// GetByID returns a single active user. Inactive users are invisible through
// this path so unconfirmed accounts do not leak.
func (s *UserService) GetByID(ctx context.Context, id string) (*ports.UserView, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Inactive {
		return nil, domain.ErrUserNotFound
	}
	view := toView(user)
	return &view, nil
}

func toView(u *domain.User) ports.UserView {
	return ports.UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
