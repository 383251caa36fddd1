package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/salon/backend/internal/application/identity"
	"github.com/salon/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies credentials and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangePassword updates the authenticated user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := uuid.Parse(middleware.GetJWTUserID(c))
	if err != nil {
		h.BadRequest(c, "Invalid user ID in token")
		return
	}

	var req identity.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
