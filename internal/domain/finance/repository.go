package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
)

// ExpenseRepository defines persistence operations for expenses
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, error)
	// FindByDateRange loads expenses with date in [from, to]
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Expense, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PettyCashRepository defines persistence operations for petty cash movements
type PettyCashRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PettyCashMovement, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PettyCashMovement, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]PettyCashMovement, error)
	Save(ctx context.Context, movement *PettyCashMovement) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteAll clears the movement history (drawer reset)
	DeleteAll(ctx context.Context) error
}
