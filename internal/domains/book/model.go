package book

import (
	"time"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
)

type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	AuthorID        uuid.UUID `json:"author_id" db:"author_id"`
	PublicationDate Date      `json:"publication_date" db:"publication_date"`
	ISBN            string    `json:"isbn" db:"isbn"`
	NumPages        int       `json:"num_pages" db:"num_pages"`
	Genre           string    `json:"genre" db:"genre"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	// Author is populated via JOIN; book responses always embed it. The
	// json tag is for cache serialization, API output goes through
	// BookResponse.
	Author *author.Author `json:"author,omitempty" db:"-"`
}
