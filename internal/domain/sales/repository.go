package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
)

// Repository defines persistence operations for sales
type Repository interface {
	// FindByID loads a sale with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	// FindAll loads sales with their items, applying the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	// FindByStaff loads every sale belonging to a staff member
	FindByStaff(ctx context.Context, staffID uuid.UUID) ([]Sale, error)
	// FindCompletedByStaff loads a staff member's COMPLETED sales
	FindCompletedByStaff(ctx context.Context, staffID uuid.UUID) ([]Sale, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Save persists the sale header and all items
	Save(ctx context.Context, sale *Sale) error
}
