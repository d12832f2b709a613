package favorite

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
)

// Service is the business logic contract for favorites. All operations are
// scoped to the authenticated user.
type Service interface {
	// Create favorites a book for the user and returns same-author
	// recommendations for the response.
	Create(ctx context.Context, userID uuid.UUID, req *FavoriteRequest) ([]book.Book, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	Delete(ctx context.Context, userID uuid.UUID, req *FavoriteRequest) error
}
