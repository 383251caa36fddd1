package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
)

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByCode(ctx context.Context, code string) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StaffRepository defines persistence operations for staff members
type StaffRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	FindByCode(ctx context.Context, code string) (*Staff, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Staff, error)
	Save(ctx context.Context, staff *Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
}
