package author

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation
	ErrInvalidName = errors.New("author name is invalid")

	// Business rules
	ErrAuthorNotFound = errors.New("author not found")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrInvalidName), errors.As(err, &vErrs):
		return 400
	default:
		return 500
	}
}
