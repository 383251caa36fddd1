package credit

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
)

// Repository defines persistence operations for credits
type Repository interface {
	// FindByID loads a credit with its payments
	FindByID(ctx context.Context, id uuid.UUID) (*Credit, error)
	// FindAll loads credits with their payments, applying the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Credit, error)
	// FindByStatus loads credits in the given status
	FindByStatus(ctx context.Context, status CreditStatus) ([]Credit, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Save persists the credit and all its payments
	Save(ctx context.Context, credit *Credit) error
	// Delete removes the credit and cascades to its payments
	Delete(ctx context.Context, id uuid.UUID) error
}
