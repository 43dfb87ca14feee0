package models

// Rental event types published to the event stream.
const (
	EventRentalCreated  = "rental.created"
	EventRentalReturned = "rental.returned"
)

// RentalEvent is the message published to Kafka on rental lifecycle
// transitions. Publishing is best-effort and never fails the mutation.
type RentalEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	RentalID  string `json:"rental_id"`
	BookID    string `json:"book_id"`
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
	Fine      int64  `json:"fine,omitempty"`
}
