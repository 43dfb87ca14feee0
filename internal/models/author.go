package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthorDB represents an author record in the database.
type AuthorDB struct {
	AuthorID  uuid.UUID `json:"id" db:"author_id"`
	FullName  string    `json:"fullName" db:"full_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AuthorWithBooks is an author joined with all books they own,
// each carrying its availability flag.
type AuthorWithBooks struct {
	AuthorDB
	Books []BookDB `json:"books"`
}
