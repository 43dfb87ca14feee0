package models

import (
	"time"

	"github.com/google/uuid"
)

// BookDB represents a book record in the database.
//
// Invariant: IsRented is true iff ActiveRentalID is non-nil and the referenced
// rental is still open (returned_at IS NULL). Every mutation of these fields
// happens inside the request transaction.
type BookDB struct {
	BookID         uuid.UUID  `json:"id" db:"book_id"`
	Title          string     `json:"title" db:"title"`
	AuthorID       uuid.UUID  `json:"authorId" db:"author_id"`
	IsRented       bool       `json:"estaPrestado" db:"is_rented"`
	ActiveRentalID *uuid.UUID `json:"alquiler" db:"active_rental_id"` // nil when available
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

// BookDetail is a book joined with its author for display.
type BookDetail struct {
	BookDB
	Author AuthorDB `json:"author"`
}

// RentedBookDB is the flattened row used by the reporting scans:
// a currently rented book joined with its open rental and the renting user.
type RentedBookDB struct {
	BookID       uuid.UUID `db:"book_id"`
	Title        string    `db:"title"`
	RentalID     uuid.UUID `db:"rental_id"`
	StartedAt    time.Time `db:"started_at"`
	UserFullName string    `db:"user_full_name"`
	UserEmail    string    `db:"user_email"`
}
