package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
)

// Error variables
var (
	ErrAuthorExists      = errors.New("author is already registered")
	ErrInvalidAuthorName = errors.New("author name must be between 3 and 64 characters")
)

// AuthorReader defines read operations for authors.
type AuthorReader interface {
	GetByID(ctx context.Context, authorID uuid.UUID) (*models.AuthorDB, error)
	GetByFullName(ctx context.Context, fullName string) (*models.AuthorDB, error)
	List(ctx context.Context) ([]models.AuthorDB, error)
	ListBooks(ctx context.Context, authorID uuid.UUID) ([]models.BookDB, error)
}

// AuthorWriter defines write operations for authors.
type AuthorWriter interface {
	Save(ctx context.Context, authorID uuid.UUID, fullName string) error
	Update(ctx context.Context, authorID uuid.UUID, fullName string) (bool, error)
	Delete(ctx context.Context, authorID uuid.UUID) (bool, error)
}

// AuthorService implements author catalog management.
type AuthorService struct {
	reader AuthorReader
	writer AuthorWriter
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(reader AuthorReader, writer AuthorWriter) *AuthorService {
	return &AuthorService{reader: reader, writer: writer}
}

// Create registers a new author. Full names are unique, compared
// case-sensitively.
func (s *AuthorService) Create(ctx context.Context, fullName string) (*models.AuthorDB, error) {
	if !validLength(fullName, 3, 64) {
		return nil, ErrInvalidAuthorName
	}

	existing, err := s.reader.GetByFullName(ctx, fullName)
	if err != nil {
		logger.Log.Errorw("failed to check author exists", "fullName", fullName, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAuthorExists
	}

	authorID := uuid.New()
	if err := s.writer.Save(ctx, authorID, fullName); err != nil {
		logger.Log.Errorw("failed to save author", "authorID", authorID, "error", err)
		return nil, err
	}

	author, err := s.reader.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to reload author", "authorID", authorID, "error", err)
		return nil, err
	}
	return author, nil
}

// GetAll returns every author with their books, each book carrying its
// availability flag.
func (s *AuthorService) GetAll(ctx context.Context) ([]models.AuthorWithBooks, error) {
	authors, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list authors", "error", err)
		return nil, err
	}

	result := make([]models.AuthorWithBooks, 0, len(authors))
	for _, author := range authors {
		books, err := s.reader.ListBooks(ctx, author.AuthorID)
		if err != nil {
			logger.Log.Errorw("failed to list author books", "authorID", author.AuthorID, "error", err)
			return nil, err
		}
		result = append(result, models.AuthorWithBooks{AuthorDB: author, Books: books})
	}
	return result, nil
}

// GetOne returns one author with their books.
func (s *AuthorService) GetOne(ctx context.Context, authorID uuid.UUID) (*models.AuthorWithBooks, error) {
	author, err := s.reader.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to load author", "authorID", authorID, "error", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	books, err := s.reader.ListBooks(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to list author books", "authorID", authorID, "error", err)
		return nil, err
	}
	return &models.AuthorWithBooks{AuthorDB: *author, Books: books}, nil
}

// Update replaces the author's full name.
func (s *AuthorService) Update(ctx context.Context, authorID uuid.UUID, fullName string) (*models.AuthorDB, error) {
	if !validLength(fullName, 3, 64) {
		return nil, ErrInvalidAuthorName
	}

	updated, err := s.writer.Update(ctx, authorID, fullName)
	if err != nil {
		logger.Log.Errorw("failed to update author", "authorID", authorID, "error", err)
		return nil, err
	}
	if !updated {
		return nil, ErrAuthorNotFound
	}

	author, err := s.reader.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to reload author", "authorID", authorID, "error", err)
		return nil, err
	}
	return author, nil
}

// Delete removes the author. The schema cascades the deletion to all books
// the author owns, regardless of rental state; a rented book's rental row
// survives as closed-over history.
func (s *AuthorService) Delete(ctx context.Context, authorID uuid.UUID) (bool, error) {
	deleted, err := s.writer.Delete(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to delete author", "authorID", authorID, "error", err)
		return false, err
	}
	if !deleted {
		return false, ErrAuthorNotFound
	}
	return true, nil
}
