package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for users
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, user *User) error
}
