package auth

import (
	"testing"
	"time"

	"github.com/salon/backend/internal/domain/identity"
	"github.com/salon/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		Expiration: expiration,
		Issuer:     "salon-test",
	})
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("admin", "secret123", "Administrator", identity.UserRoleAdmin)
	require.NoError(t, err)
	return user
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	service := newTestService(time.Hour)
	user := newTestUser(t)

	token, expiresAt, err := service.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "salon-test", claims.Issuer)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)
	token, _, err := service.Issue(newTestUser(t))
	require.NoError(t, err)

	_, err = service.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	service := newTestService(time.Hour)
	token, _, err := service.Issue(newTestUser(t))
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", Expiration: time.Hour, Issuer: "salon-test"})
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.Validate(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
