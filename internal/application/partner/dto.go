package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/partner"
)

// CreateClientRequest represents a request to register a client
type CreateClientRequest struct {
	Code  string `json:"code" binding:"required,min=1,max=50"`
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=30"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=30"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToClientResponse converts a Client to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// CreateStaffRequest represents a request to register a staff member
type CreateStaffRequest struct {
	Code  string `json:"code" binding:"required,min=1,max=50"`
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=30"`
}

// UpdateStaffRequest represents a request to update a staff member
type UpdateStaffRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=30"`
}

// StaffResponse represents a staff member in API responses
type StaffResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToStaffResponse converts a Staff to a response DTO
func ToStaffResponse(s *partner.Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}
