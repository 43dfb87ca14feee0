package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
)

// Error variables
var (
	ErrAuthorNotFound = errors.New("author does not exist")
	ErrInvalidTitle   = errors.New("title must be between 3 and 64 characters")
)

// BookReader defines read operations for books.
type BookReader interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	ListAvailable(ctx context.Context) ([]models.BookDetail, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, bookID uuid.UUID, title string, authorID uuid.UUID) error
	Update(ctx context.Context, bookID uuid.UUID, title *string, authorID *uuid.UUID) (bool, error)
	Delete(ctx context.Context, bookID uuid.UUID) (bool, error)
}

// BookAuthorReader defines the author reads the book service needs.
type BookAuthorReader interface {
	GetByID(ctx context.Context, authorID uuid.UUID) (*models.AuthorDB, error)
}

// BookRentalReader resolves a book's active rental for display.
type BookRentalReader interface {
	GetByID(ctx context.Context, rentalID uuid.UUID) (*models.RentalDB, error)
}

// BookWithEstimate is a single book plus, when it is currently rented, the
// estimated return date (rental start + grace period). Display only; the
// authoritative fine uses the real elapsed time at return.
type BookWithEstimate struct {
	Book            models.BookDetail `json:"book"`
	EstimatedReturn *time.Time        `json:"fechaEstimadaDevolucion,omitempty"`
}

// BookService implements book catalog management.
type BookService struct {
	bookReader   BookReader
	bookWriter   BookWriter
	authorReader BookAuthorReader
	rentalReader BookRentalReader
}

// NewBookService creates a new BookService.
func NewBookService(
	bookReader BookReader,
	bookWriter BookWriter,
	authorReader BookAuthorReader,
	rentalReader BookRentalReader,
) *BookService {
	return &BookService{
		bookReader:   bookReader,
		bookWriter:   bookWriter,
		authorReader: authorReader,
		rentalReader: rentalReader,
	}
}

// Create registers a new book for an existing author. New books start
// available.
func (s *BookService) Create(ctx context.Context, title string, authorID uuid.UUID) (*models.BookDetail, error) {
	if !validLength(title, 3, 64) {
		return nil, ErrInvalidTitle
	}

	author, err := s.authorReader.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to load author", "authorID", authorID, "error", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	bookID := uuid.New()
	if err := s.bookWriter.Save(ctx, bookID, title, authorID); err != nil {
		logger.Log.Errorw("failed to save book", "bookID", bookID, "error", err)
		return nil, err
	}

	detail := &models.BookDetail{
		BookDB: models.BookDB{
			BookID:    bookID,
			Title:     title,
			AuthorID:  authorID,
			IsRented:  false,
			CreatedAt: time.Now(),
		},
		Author: *author,
	}
	return detail, nil
}

// ListAvailable returns all books not currently rented.
func (s *BookService) ListAvailable(ctx context.Context) ([]models.BookDetail, error) {
	books, err := s.bookReader.ListAvailable(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list available books", "error", err)
		return nil, err
	}
	return books, nil
}

// GetByID returns one book; for a rented book it also carries the estimated
// return date, rental start plus the grace period.
func (s *BookService) GetByID(ctx context.Context, bookID uuid.UUID) (*BookWithEstimate, error) {
	book, err := s.bookReader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to load book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	author, err := s.authorReader.GetByID(ctx, book.AuthorID)
	if err != nil {
		logger.Log.Errorw("failed to load author", "authorID", book.AuthorID, "error", err)
		return nil, err
	}

	result := &BookWithEstimate{Book: models.BookDetail{BookDB: *book}}
	if author != nil {
		result.Book.Author = *author
	}

	if book.IsRented && book.ActiveRentalID != nil {
		rental, err := s.rentalReader.GetByID(ctx, *book.ActiveRentalID)
		if err != nil {
			logger.Log.Errorw("failed to load rental", "rentalID", *book.ActiveRentalID, "error", err)
			return nil, err
		}
		if rental != nil {
			estimated := rental.StartedAt.AddDate(0, 0, GraceDays)
			result.EstimatedReturn = &estimated
		}
	}

	return result, nil
}

// Update applies a partial update: only supplied fields are written. A
// supplied author id must resolve to an existing author.
func (s *BookService) Update(ctx context.Context, bookID uuid.UUID, title *string, authorID *uuid.UUID) (bool, error) {
	if title != nil && !validLength(*title, 3, 64) {
		return false, ErrInvalidTitle
	}

	if authorID != nil {
		author, err := s.authorReader.GetByID(ctx, *authorID)
		if err != nil {
			logger.Log.Errorw("failed to load author", "authorID", *authorID, "error", err)
			return false, err
		}
		if author == nil {
			return false, ErrAuthorNotFound
		}
	}

	updated, err := s.bookWriter.Update(ctx, bookID, title, authorID)
	if err != nil {
		logger.Log.Errorw("failed to update book", "bookID", bookID, "error", err)
		return false, err
	}
	if !updated {
		return false, ErrBookNotFound
	}
	return true, nil
}

// Delete removes the book.
func (s *BookService) Delete(ctx context.Context, bookID uuid.UUID) (bool, error) {
	deleted, err := s.bookWriter.Delete(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to delete book", "bookID", bookID, "error", err)
		return false, err
	}
	if !deleted {
		return false, ErrBookNotFound
	}
	return true, nil
}

func validLength(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}
