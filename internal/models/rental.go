package models

import (
	"time"

	"github.com/google/uuid"
)

// RentalDB represents an alquiler record: one book lent to one user.
// A rental is active while ReturnedAt is nil; once closed it is immutable
// history and is never reopened or deleted.
type RentalDB struct {
	RentalID   uuid.UUID  `json:"id" db:"rental_id"`
	BookID     uuid.UUID  `json:"bookId" db:"book_id"`
	UserID     uuid.UUID  `json:"userId" db:"user_id"`
	StartedAt  time.Time  `json:"fechaInicial" db:"started_at"`
	ReturnedAt *time.Time `json:"fechaDevolucion" db:"returned_at"`
}

// Active reports whether the rental is still open.
func (r RentalDB) Active() bool {
	return r.ReturnedAt == nil
}

// RentalDetail is a rental joined with its book and user for display.
type RentalDetail struct {
	RentalDB
	Book BookDB `json:"book"`
	User UserDB `json:"user"`
}
