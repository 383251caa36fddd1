package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/infrastructure/auth"
	"github.com/salon/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTUsernameKey = "jwt_username"
	JWTRoleKey     = "jwt_role"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTAuthMiddleware validates the Authorization bearer token and stores
// the claims in the request context.
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := jwtService.Validate(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTUsernameKey, claims.Username)
		c.Set(JWTRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated user has the role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(JWTRoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetJWTUserID returns the authenticated user ID, or "" when unauthenticated
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTUsername returns the authenticated username, or "" when unauthenticated
func GetJWTUsername(c *gin.Context) string {
	return c.GetString(JWTUsernameKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
