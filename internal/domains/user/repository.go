package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for user accounts.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
