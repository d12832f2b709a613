package service

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/domains/favorite"
)

// recommendationLimit caps the list returned alongside a created favorite.
const recommendationLimit = 5

type favoriteService struct {
	repo     favorite.Repository
	bookRepo book.Repository
}

// NewFavoriteService creates the favorite business logic layer.
func NewFavoriteService(repo favorite.Repository, bookRepo book.Repository) favorite.Service {
	return &favoriteService{repo: repo, bookRepo: bookRepo}
}

func (s *favoriteService) Create(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) ([]book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The book existence check comes before the cap check so a bogus id
	// yields 404 even for a user at the limit.
	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, userID, req.BookID); err != nil {
		return nil, err
	}

	return s.repo.RecommendationsForUser(ctx, userID, recommendationLimit)
}

func (s *favoriteService) ListByUser(ctx context.Context, userID uuid.UUID) ([]favorite.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *favoriteService) Delete(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.repo.DeleteByUserAndBook(ctx, userID, req.BookID)
}
