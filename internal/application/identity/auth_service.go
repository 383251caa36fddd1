package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/identity"
	"github.com/salon/backend/internal/domain/shared"
)

// TokenIssuer mints signed access tokens for authenticated users
type TokenIssuer interface {
	Issue(user *identity.User) (token string, expiresAt time.Time, err error)
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and user info
type LoginResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// AuthService handles authentication
type AuthService struct {
	userRepo identity.Repository
	issuer   TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.Repository, issuer TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// Login verifies credentials and issues a token. Failed lookups and bad
// passwords return the same error so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.Active || !user.CheckPassword(req.Password) {
		return nil, shared.ErrUnauthorized
	}

	token, expiresAt, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role.String(),
	}, nil
}

// ChangePassword updates the password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return shared.ErrUnauthorized
	}
	if err := user.ChangePassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}
