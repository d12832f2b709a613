package book

import (
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/domains/author"
)

// CreateBookRequest is the payload for POST /books. The author is embedded
// rather than referenced by id; creation runs get-or-create on it.
type CreateBookRequest struct {
	Title           string                     `json:"title"`
	Description     string                     `json:"description"`
	Author          author.CreateAuthorRequest `json:"author"`
	PublicationDate Date                       `json:"publication_date"`
	ISBN            string                     `json:"isbn"`
	NumPages        int                        `json:"num_pages"`
	Genre           string                     `json:"genre"`
}

func (r CreateBookRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required"), validation.Length(1, 13)),
		validation.Field(&r.NumPages, validation.Required.Error("num_pages is required"), validation.Min(1)),
		validation.Field(&r.Genre, validation.Required.Error("genre is required"), validation.Length(1, 100)),
	); err != nil {
		return err
	}

	if r.PublicationDate.IsZero() {
		return validation.Errors{"publication_date": validation.ErrRequired}
	}

	return r.Author.Validate()
}

// UpdateBookRequest carries partial updates; nil fields are left untouched.
// A non-nil Author re-runs get-or-create and reassigns the book.
type UpdateBookRequest struct {
	Title           *string                     `json:"title,omitempty"`
	Description     *string                     `json:"description,omitempty"`
	Author          *author.CreateAuthorRequest `json:"author,omitempty"`
	PublicationDate *Date                       `json:"publication_date,omitempty"`
	ISBN            *string                     `json:"isbn,omitempty"`
	NumPages        *int                        `json:"num_pages,omitempty"`
	Genre           *string                     `json:"genre,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Required.Error("title cannot be empty"), validation.Length(1, 255))),
		validation.Field(&r.ISBN, validation.When(r.ISBN != nil, validation.Required.Error("isbn cannot be empty"), validation.Length(1, 13))),
		validation.Field(&r.NumPages, validation.When(r.NumPages != nil, validation.Min(1))),
	); err != nil {
		return err
	}

	if r.Author != nil {
		return r.Author.Validate()
	}
	return nil
}

// BookResponse always embeds the full author object.
type BookResponse struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Author          author.AuthorResponse `json:"author"`
	PublicationDate Date                  `json:"publication_date"`
	ISBN            string                `json:"isbn"`
	NumPages        int                   `json:"num_pages"`
	Genre           string                `json:"genre"`
}

// ToResponse converts Book to BookResponse. The Author field must have been
// populated by the repository JOIN.
func (b *Book) ToResponse() *BookResponse {
	resp := &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.Description,
		PublicationDate: b.PublicationDate,
		ISBN:            b.ISBN,
		NumPages:        b.NumPages,
		Genre:           b.Genre,
	}
	if b.Author != nil {
		resp.Author = *b.Author.ToResponse()
	}
	return resp
}

// ToResponses maps a slice of books to responses.
func ToResponses(books []Book) []BookResponse {
	resp := make([]BookResponse, len(books))
	for i := range books {
		resp[i] = *books[i].ToResponse()
	}
	return resp
}
