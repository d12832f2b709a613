package book

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for books.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	List(ctx context.Context, search string) ([]Book, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
