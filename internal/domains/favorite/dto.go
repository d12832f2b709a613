package favorite

import (
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/domains/book"
)

// FavoriteRequest is the payload for both POST and DELETE /favorites.
type FavoriteRequest struct {
	BookID uuid.UUID `json:"book_id"`
}

func (r FavoriteRequest) Validate() error {
	// Required does not catch a zero uuid (fixed-size array), so the
	// check is explicit.
	if r.BookID == uuid.Nil {
		return validation.Errors{"book_id": validation.ErrRequired}
	}
	return nil
}

type FavoriteResponse struct {
	ID   uuid.UUID         `json:"id"`
	Book book.BookResponse `json:"book"`
}

func (f *Favorite) ToResponse() *FavoriteResponse {
	resp := &FavoriteResponse{ID: f.ID}
	if f.Book != nil {
		resp.Book = *f.Book.ToResponse()
	}
	return resp
}

func ToResponses(favorites []Favorite) []FavoriteResponse {
	resp := make([]FavoriteResponse, len(favorites))
	for i := range favorites {
		resp[i] = *favorites[i].ToResponse()
	}
	return resp
}

// CreateResponse is returned on a successful POST /favorites.
type CreateResponse struct {
	Message         string              `json:"message"`
	Recommendations []book.BookResponse `json:"recommendations"`
}

// MessageResponse is returned on a successful DELETE /favorites.
type MessageResponse struct {
	Message string `json:"message"`
}
