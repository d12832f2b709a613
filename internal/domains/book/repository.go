package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for books. Every read populates the
// embedded Author via JOIN.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List returns all books, optionally filtered by a case-insensitive
	// substring match on title OR author name.
	List(ctx context.Context, search string) ([]Book, error)

	Update(ctx context.Context, b *Book) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
