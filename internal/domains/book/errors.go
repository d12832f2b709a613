package book

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/domains/author"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("book with this isbn already exists")
)

// ToHTTPStatus converts a domain error to an HTTP status code. Duplicate
// unique fields surface as 400 per the API error contract. Author errors
// can bubble up through embedded author get-or-create.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrDuplicateISBN), errors.As(err, &vErrs):
		return 400
	default:
		return author.ToHTTPStatus(err)
	}
}
