package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for authors.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
