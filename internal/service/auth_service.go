package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-complaint-service/internal/auth"
	"github.com/spec-kit/civic-complaint-service/internal/config"
	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/repository"
	"github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

// AuthService coordinates registration, login and password flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	tokens     *auth.TokenManager
	logger     *zap.Logger
	bcryptCost int
	resetTTL   time.Duration
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, resets repository.PasswordResetRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		resets:     resets,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
		resetTTL:   time.Duration(cfg.PasswordResetTTLMinutes) * time.Minute,
	}
}

// Session is the result of a successful register or login.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// RegisterInput describes the signup payload.
type RegisterInput struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// LoginInput describes the login payload.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// ChangePasswordInput describes an authenticated password change.
type ChangePasswordInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8,max=72"`
}

// ResetPasswordInput describes a token-based password reset.
type ResetPasswordInput struct {
	Token       string `validate:"required"`
	NewPassword string `validate:"required,min=8,max=72"`
}

// Register creates a citizen account and returns an authenticated session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if err := validateInput(input, nil); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         domain.UserRoleCitizen,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errorutil.NewConflict("email already registered", map[string]any{"email": user.Email})
		}
		return nil, err
	}
	return s.session(user)
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*Session, error) {
	if err := validateInput(input, nil); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, input.Password); err != nil {
		return nil, errorutil.NewUnauthorized("invalid credentials")
	}
	return s.session(user)
}

// Profile returns the account behind a user ID.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, input ChangePasswordInput) error {
	if err := validateInput(input, nil); err != nil {
		return err
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return errorutil.NewUnauthorized("current password is incorrect")
	}

	hash, err := auth.HashPassword(input.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// ForgotPassword issues a single-use reset token. An unknown email yields an
// empty token and no error, so the endpoint does not leak which addresses
// have accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug("password reset requested for unknown email")
			return "", nil
		}
		return "", err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return "", err
	}
	s.logger.Info("password reset token issued", zap.String("user_id", user.ID))
	return token.Token, nil
}

// ResetPassword consumes a reset token and sets the new password.
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := validateInput(input, nil); err != nil {
		return err
	}

	token, err := s.resets.GetByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorutil.NewUnauthorized("invalid or expired reset token")
		}
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return errorutil.NewUnauthorized("invalid or expired reset token")
	}

	user, err := s.Profile(ctx, token.UserID)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(input.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

func (s *AuthService) session(user *domain.User) (*Session, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
