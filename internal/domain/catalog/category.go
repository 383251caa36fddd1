package catalog

import (
	"time"

	"github.com/salon/backend/internal/domain/shared"
)

// Category groups products for display and reporting
type Category struct {
	shared.BaseEntity
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}

	c.Name = name
	c.UpdatedAt = time.Now()

	return nil
}
