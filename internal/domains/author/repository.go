package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for authors.
type Repository interface {
	Create(ctx context.Context, a *Author) (*Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author; dependent books go with it (FK cascade).
	Delete(ctx context.Context, id uuid.UUID) error

	// GetOrCreate finds an author matching name AND about exactly, creating
	// one when absent. created reports which of the two happened.
	GetOrCreate(ctx context.Context, name string, about *string) (a *Author, created bool, err error)
}
