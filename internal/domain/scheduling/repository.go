package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
)

// Repository defines persistence operations for appointments
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Appointment, error)
	// FindByDateRange loads appointments scheduled within [from, to]
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error)
	FindByStaff(ctx context.Context, staffID uuid.UUID) ([]Appointment, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, appointment *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
