package favorite

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
)

// Repository is the data access contract for favorites.
type Repository interface {
	// Create inserts a favorite, enforcing the per-user cap before the
	// uniqueness check. Both checks run under a per-user advisory lock so
	// concurrent requests cannot push a user past the cap.
	Create(ctx context.Context, userID, bookID uuid.UUID) (*Favorite, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	DeleteByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) error

	// RecommendationsForUser returns books by authors the user has
	// favorited, excluding books already favorited, up to limit.
	RecommendationsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]book.Book, error)
}
