package favorite

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/domains/book"
)

var (
	ErrFavoriteNotFound     = errors.New("favorite not found")
	ErrFavoriteLimitReached = errors.New("favorite limit reached")
	ErrAlreadyFavorited     = errors.New("book is already in favorites")
)

// ToHTTPStatus converts a domain error to an HTTP status code. Book errors
// bubble up from the existence check on create.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrFavoriteNotFound):
		return 404
	case errors.Is(err, ErrFavoriteLimitReached),
		errors.Is(err, ErrAlreadyFavorited),
		errors.As(err, &vErrs):
		return 400
	default:
		return book.ToHTTPStatus(err)
	}
}
