package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
)

// AuthorReadRepository handles author read operations.
type AuthorReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAuthorReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AuthorReadRepository {
	return &AuthorReadRepository{db: db, txGetter: txGetter}
}

func (r *AuthorReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the author with the given id, or nil when absent.
func (r *AuthorReadRepository) GetByID(ctx context.Context, authorID uuid.UUID) (*models.AuthorDB, error) {
	const query = `
		SELECT author_id, full_name, created_at
		FROM authors
		WHERE author_id = $1
	`

	var author models.AuthorDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &author, query, authorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByFullName matches the exact (case-sensitive) full name, or nil when absent.
func (r *AuthorReadRepository) GetByFullName(ctx context.Context, fullName string) (*models.AuthorDB, error) {
	const query = `
		SELECT author_id, full_name, created_at
		FROM authors
		WHERE full_name = $1
	`

	var author models.AuthorDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &author, query, fullName)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fullName},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List returns all authors ordered by creation time.
func (r *AuthorReadRepository) List(ctx context.Context) ([]models.AuthorDB, error) {
	const query = `
		SELECT author_id, full_name, created_at
		FROM authors
		ORDER BY created_at
	`

	var authors []models.AuthorDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &authors, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(authors),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return authors, nil
}

// ListBooks returns all books owned by the author.
func (r *AuthorReadRepository) ListBooks(ctx context.Context, authorID uuid.UUID) ([]models.BookDB, error) {
	const query = `
		SELECT book_id, title, author_id, is_rented, active_rental_id, created_at
		FROM books
		WHERE author_id = $1
		ORDER BY created_at
	`

	var books []models.BookDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &books, query, authorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID},
		"result_count", len(books),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return books, nil
}

// AuthorWriteRepository handles author write operations.
type AuthorWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAuthorWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AuthorWriteRepository {
	return &AuthorWriteRepository{db: db, txGetter: txGetter}
}

func (r *AuthorWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new author row.
func (r *AuthorWriteRepository) Save(ctx context.Context, authorID uuid.UUID, fullName string) error {
	const query = `
		INSERT INTO authors (author_id, full_name, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, authorID, fullName)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID, fullName},
		"error", err,
	)

	return err
}

// Update replaces the author's full name. Returns false when no row matched.
func (r *AuthorWriteRepository) Update(ctx context.Context, authorID uuid.UUID, fullName string) (bool, error) {
	const query = `
		UPDATE authors
		SET full_name = $2
		WHERE author_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, authorID, fullName)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID, fullName},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// Delete removes the author. The schema cascades the deletion to all books
// owned by the author. Returns false when no row matched.
func (r *AuthorWriteRepository) Delete(ctx context.Context, authorID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM authors
		WHERE author_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, authorID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
