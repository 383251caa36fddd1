package partner

import (
	"time"

	"github.com/salon/backend/internal/domain/shared"
)

// Client represents a salon customer
type Client struct {
	shared.BaseEntity
	Code  string `gorm:"size:50;not null;uniqueIndex"`
	Name  string `gorm:"size:200;not null"`
	Phone string `gorm:"size:30"`
	Email string `gorm:"size:200"`
	Notes string `gorm:"size:500"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client
func NewClient(code, name, phone string) (*Client, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Client code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Phone:      phone,
	}, nil
}

// Update changes the editable client fields
func (c *Client) Update(name, phone, email, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}
