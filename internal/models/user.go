package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// JSON field names follow the public API contract (Spanish names where the
// original schema uses them).
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsVerified   bool      `json:"valido" db:"is_verified"` // email-verified flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
