package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
)

type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
}

// NewBookService creates the book business logic layer. Book creation and
// author reassignment go through author get-or-create.
func NewBookService(repo book.Repository, authorRepo author.Repository) book.Service {
	return &bookService{repo: repo, authorRepo: authorRepo}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, _, err := s.authorRepo.GetOrCreate(ctx, strings.TrimSpace(req.Author.Name), req.Author.About)
	if err != nil {
		return nil, err
	}

	b := &book.Book{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		AuthorID:        a.ID,
		PublicationDate: req.PublicationDate,
		ISBN:            strings.TrimSpace(req.ISBN),
		NumPages:        req.NumPages,
		Genre:           req.Genre,
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	created.Author = a

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, search string) ([]book.Book, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		current.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.PublicationDate != nil {
		current.PublicationDate = *req.PublicationDate
	}
	if req.ISBN != nil {
		current.ISBN = strings.TrimSpace(*req.ISBN)
	}
	if req.NumPages != nil {
		current.NumPages = *req.NumPages
	}
	if req.Genre != nil {
		current.Genre = *req.Genre
	}
	if req.Author != nil {
		a, _, err := s.authorRepo.GetOrCreate(ctx, strings.TrimSpace(req.Author.Name), req.Author.About)
		if err != nil {
			return nil, err
		}
		current.AuthorID = a.ID
		current.Author = a
	}

	return s.repo.Update(ctx, current)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return book.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}
