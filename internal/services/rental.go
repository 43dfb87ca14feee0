package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
)

// Business-rule constants for the rental lifecycle.
const (
	// MaxActiveRentals is the hard cap of simultaneously open rentals per user.
	MaxActiveRentals = 3
	// GraceDays is the number of days a book can be kept without a fine.
	GraceDays = 7
	// FinePerDay is the flat per-day charge beyond the grace period.
	FinePerDay = 100

	millisPerDay = 86_400_000
)

// Error variables
var (
	ErrBookNotFound        = errors.New("book does not exist")
	ErrBookAlreadyRented   = errors.New("book is already rented")
	ErrBookNotRented       = errors.New("book is not rented")
	ErrUserNotFound        = errors.New("user does not exist")
	ErrRentalLimitExceeded = errors.New("user already has three active rentals")
	// ErrMissingRentalLink means a book flagged as rented has no active rental
	// record. It is an internal-invariant violation, never a user error.
	ErrMissingRentalLink = errors.New("rented book has no active rental record")
)

// RentalBookReader defines the book reads the engine needs.
type RentalBookReader interface {
	GetByIDForUpdate(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
}

// RentalBookWriter defines the book state transitions the engine performs.
type RentalBookWriter interface {
	SetRented(ctx context.Context, bookID, rentalID uuid.UUID) error
	SetReturned(ctx context.Context, bookID uuid.UUID) error
}

// RentalUserReader defines the user reads the engine needs.
type RentalUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// RentalReader defines read operations for rentals.
type RentalReader interface {
	GetByID(ctx context.Context, rentalID uuid.UUID) (*models.RentalDB, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListAll(ctx context.Context) ([]models.RentalDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RentalDetail, error)
}

// RentalWriter defines write operations for rentals.
type RentalWriter interface {
	Save(ctx context.Context, rental models.RentalDB) error
	Close(ctx context.Context, rentalID uuid.UUID, returnedAt time.Time) error
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ReturnResult is the outcome of returning a book: the updated book, the
// closed rental, the computed fine, and a human-readable summary.
type ReturnResult struct {
	Book    models.BookDB   `json:"book"`
	Rental  models.RentalDB `json:"alquiler"`
	Fine    int64           `json:"multa"`
	Message string          `json:"mensaje"`
}

// RentalService is the rental lifecycle engine. Every mutation runs inside
// the caller's transaction (the tx middleware) and keeps the invariant:
// a book is rented iff it links an open rental.
type RentalService struct {
	bookReader   RentalBookReader
	bookWriter   RentalBookWriter
	userReader   RentalUserReader
	rentalReader RentalReader
	rentalWriter RentalWriter
	events       EventWriter
}

// NewRentalService creates a new RentalService.
func NewRentalService(
	bookReader RentalBookReader,
	bookWriter RentalBookWriter,
	userReader RentalUserReader,
	rentalReader RentalReader,
	rentalWriter RentalWriter,
	events EventWriter,
) *RentalService {
	return &RentalService{
		bookReader:   bookReader,
		bookWriter:   bookWriter,
		userReader:   userReader,
		rentalReader: rentalReader,
		rentalWriter: rentalWriter,
		events:       events,
	}
}

// CreateRental rents the book to the user. Preconditions are checked in
// order, each failing fast with its own error: the book must exist, must not
// be rented, the user must exist, and the user must hold fewer than
// MaxActiveRentals open rentals. The book row is locked for the transaction,
// so two concurrent rentals of the same book serialize on the row lock.
func (s *RentalService) CreateRental(ctx context.Context, bookID, userID uuid.UUID) (*models.RentalDetail, error) {
	book, err := s.bookReader.GetByIDForUpdate(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to load book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if book.IsRented {
		return nil, ErrBookAlreadyRented
	}

	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	active, err := s.rentalReader.CountActiveByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count active rentals", "userID", userID, "error", err)
		return nil, err
	}
	if active >= MaxActiveRentals {
		return nil, ErrRentalLimitExceeded
	}

	rental := models.RentalDB{
		RentalID:  uuid.New(),
		BookID:    book.BookID,
		UserID:    user.UserID,
		StartedAt: time.Now(),
	}

	if err := s.rentalWriter.Save(ctx, rental); err != nil {
		logger.Log.Errorw("failed to save rental", "rentalID", rental.RentalID, "error", err)
		return nil, err
	}
	if err := s.bookWriter.SetRented(ctx, book.BookID, rental.RentalID); err != nil {
		logger.Log.Errorw("failed to mark book rented", "bookID", book.BookID, "error", err)
		return nil, err
	}

	book.IsRented = true
	book.ActiveRentalID = &rental.RentalID

	s.publishEvent(ctx, models.RentalEvent{
		EventID:   uuid.NewString(),
		Type:      models.EventRentalCreated,
		RentalID:  rental.RentalID.String(),
		BookID:    book.BookID.String(),
		UserID:    user.UserID.String(),
		Timestamp: rental.StartedAt.Unix(),
	})

	return &models.RentalDetail{
		RentalDB: rental,
		Book:     *book,
		User:     *user,
	}, nil
}

// ReturnBook closes the book's active rental, computes the fine, and makes
// the book available again. The two writes (close rental, reset book) are
// covered by the request transaction.
func (s *RentalService) ReturnBook(ctx context.Context, bookID uuid.UUID) (*ReturnResult, error) {
	book, err := s.bookReader.GetByIDForUpdate(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to load book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if !book.IsRented {
		return nil, ErrBookNotRented
	}
	if book.ActiveRentalID == nil {
		logger.Log.Errorw("invariant violation: rented book without rental link", "bookID", bookID)
		return nil, ErrMissingRentalLink
	}

	rental, err := s.rentalReader.GetByID(ctx, *book.ActiveRentalID)
	if err != nil {
		logger.Log.Errorw("failed to load rental", "rentalID", *book.ActiveRentalID, "error", err)
		return nil, err
	}
	if rental == nil || !rental.Active() {
		logger.Log.Errorw("invariant violation: active rental link is stale", "bookID", bookID)
		return nil, ErrMissingRentalLink
	}

	now := time.Now()
	if err := s.rentalWriter.Close(ctx, rental.RentalID, now); err != nil {
		logger.Log.Errorw("failed to close rental", "rentalID", rental.RentalID, "error", err)
		return nil, err
	}
	if err := s.bookWriter.SetReturned(ctx, book.BookID); err != nil {
		logger.Log.Errorw("failed to mark book returned", "bookID", book.BookID, "error", err)
		return nil, err
	}

	rental.ReturnedAt = &now
	book.IsRented = false
	book.ActiveRentalID = nil

	elapsedDays, fine := ComputeFine(rental.StartedAt, now)

	s.publishEvent(ctx, models.RentalEvent{
		EventID:   uuid.NewString(),
		Type:      models.EventRentalReturned,
		RentalID:  rental.RentalID.String(),
		BookID:    book.BookID.String(),
		UserID:    rental.UserID.String(),
		Timestamp: now.Unix(),
		Fine:      fine,
	})

	message := fmt.Sprintf(
		"El libro %s fue devuelto con exito. Cant. de dias: %d | Dias extra: %d / Multa: %d pesos (%d pesos x dia)",
		book.Title, elapsedDays, overdueDays(elapsedDays), fine, FinePerDay,
	)

	return &ReturnResult{
		Book:    *book,
		Rental:  *rental,
		Fine:    fine,
		Message: message,
	}, nil
}

// ListAll returns every rental joined with book and user.
func (s *RentalService) ListAll(ctx context.Context) ([]models.RentalDetail, error) {
	details, err := s.rentalReader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list rentals", "error", err)
		return nil, err
	}
	return details, nil
}

// ListByUser returns every rental of one user joined with book and user.
func (s *RentalService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RentalDetail, error) {
	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	details, err := s.rentalReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list rentals for user", "userID", userID, "error", err)
		return nil, err
	}
	return details, nil
}

// ComputeFine returns whole elapsed days and the fine for a rental returned
// at returnedAt. Day count is floor(elapsed-milliseconds / 86400000) in exact
// integer arithmetic, deliberately not a date-field subtraction. No fine
// accrues within the grace period; the boundary day itself is free.
func ComputeFine(startedAt, returnedAt time.Time) (elapsedDays, fine int64) {
	elapsedDays = returnedAt.Sub(startedAt).Milliseconds() / millisPerDay
	fine = overdueDays(elapsedDays) * FinePerDay
	return elapsedDays, fine
}

func overdueDays(elapsedDays int64) int64 {
	if elapsedDays > GraceDays {
		return elapsedDays - GraceDays
	}
	return 0
}

// publishEvent publishes a rental lifecycle event to Kafka. Publishing is a
// side effect of an already-committed mutation: failures are logged and never
// escalated.
func (s *RentalService) publishEvent(ctx context.Context, event models.RentalEvent) {
	if s.events == nil {
		logger.Log.Warnw("event writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal rental event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RentalID),
		Value: data,
	}

	if err := s.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish rental event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("rental event published", "event_id", event.EventID, "type", event.Type)
	}
}
