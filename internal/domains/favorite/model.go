package favorite

import (
	"time"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
)

// MaxPerUser is the hard cap on favorites a single user may hold.
const MaxPerUser = 20

type Favorite struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	BookID    uuid.UUID `json:"book_id" db:"book_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Book is populated via JOIN; favorite listings embed the full book.
	Book *book.Book `json:"-" db:"-"`
}
