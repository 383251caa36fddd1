package partner

import (
	"time"

	"github.com/salon/backend/internal/domain/shared"
)

// Staff represents a salon staff member who earns sale commissions
type Staff struct {
	shared.BaseEntity
	Code  string `gorm:"size:50;not null;uniqueIndex"`
	Name  string `gorm:"size:200;not null"`
	Phone string `gorm:"size:30"`
}

// TableName returns the table name for GORM
func (Staff) TableName() string {
	return "staff"
}

// NewStaff creates a new staff member
func NewStaff(code, name, phone string) (*Staff, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Staff code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}

	return &Staff{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Phone:      phone,
	}, nil
}

// Update changes the editable staff fields
func (s *Staff) Update(name, phone string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}

	s.Name = name
	s.Phone = phone
	s.UpdatedAt = time.Now()

	return nil
}
