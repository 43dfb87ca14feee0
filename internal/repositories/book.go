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

// BookReadRepository handles book read operations.
type BookReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookReadRepository {
	return &BookReadRepository{db: db, txGetter: txGetter}
}

func (r *BookReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the book with the given id, or nil when absent.
func (r *BookReadRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT book_id, title, author_id, is_rented, active_rental_id, created_at
		FROM books
		WHERE book_id = $1
	`
	return r.getOne(ctx, query, bookID)
}

// GetByIDForUpdate locks the book row for the remainder of the transaction so
// the availability check and the rented-flag update cannot race a concurrent
// rental of the same book.
func (r *BookReadRepository) GetByIDForUpdate(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT book_id, title, author_id, is_rented, active_rental_id, created_at
		FROM books
		WHERE book_id = $1
		FOR UPDATE
	`
	return r.getOne(ctx, query, bookID)
}

func (r *BookReadRepository) getOne(ctx context.Context, query string, bookID uuid.UUID) (*models.BookDB, error) {
	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListAvailable returns all books not currently rented, joined with their author.
func (r *BookReadRepository) ListAvailable(ctx context.Context) ([]models.BookDetail, error) {
	const query = `
		SELECT b.book_id, b.title, b.author_id, b.is_rented, b.active_rental_id, b.created_at,
		       a.author_id AS a_author_id, a.full_name AS a_full_name, a.created_at AS a_created_at
		FROM books b
		JOIN authors a ON a.author_id = b.author_id
		WHERE b.is_rented = FALSE
		ORDER BY b.created_at
	`

	rows, err := r.executor(ctx).QueryxContext(ctx, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []models.BookDetail
	for rows.Next() {
		var row bookAuthorRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		books = append(books, row.toDetail())
	}
	return books, rows.Err()
}

// ListRented returns every currently rented book joined with its open rental
// and the renting user. Used by the reporting scans.
func (r *BookReadRepository) ListRented(ctx context.Context) ([]models.RentedBookDB, error) {
	const query = `
		SELECT b.book_id, b.title, r.rental_id, r.started_at,
		       u.full_name AS user_full_name, u.email AS user_email
		FROM books b
		JOIN rentals r ON r.rental_id = b.active_rental_id
		JOIN users u ON u.user_id = r.user_id
		WHERE b.is_rented = TRUE
		ORDER BY r.started_at
	`

	var rented []models.RentedBookDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rented, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(rented),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rented, nil
}

// bookAuthorRow is the flat scan target for book+author joins.
type bookAuthorRow struct {
	models.BookDB
	AAuthorID  uuid.UUID    `db:"a_author_id"`
	AFullName  string       `db:"a_full_name"`
	ACreatedAt sql.NullTime `db:"a_created_at"`
}

func (row bookAuthorRow) toDetail() models.BookDetail {
	detail := models.BookDetail{BookDB: row.BookDB}
	detail.Author = models.AuthorDB{
		AuthorID: row.AAuthorID,
		FullName: row.AFullName,
	}
	if row.ACreatedAt.Valid {
		detail.Author.CreatedAt = row.ACreatedAt.Time
	}
	return detail
}

// BookWriteRepository handles book write operations.
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new book row. New books are never rented.
func (r *BookWriteRepository) Save(ctx context.Context, bookID uuid.UUID, title string, authorID uuid.UUID) error {
	const query = `
		INSERT INTO books (book_id, title, author_id, is_rented, active_rental_id, created_at)
		VALUES ($1, $2, $3, FALSE, NULL, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, bookID, title, authorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID, title, authorID},
		"error", err,
	)

	return err
}

// SetRented flags the book as rented and links its active rental. Both fields
// change in one statement so the invariant cannot be observed half-applied.
func (r *BookWriteRepository) SetRented(ctx context.Context, bookID, rentalID uuid.UUID) error {
	const query = `
		UPDATE books
		SET is_rented = TRUE, active_rental_id = $2
		WHERE book_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, bookID, rentalID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID, rentalID},
		"error", err,
	)

	return err
}

// SetReturned clears the rented flag and the active rental link together.
func (r *BookWriteRepository) SetReturned(ctx context.Context, bookID uuid.UUID) error {
	const query = `
		UPDATE books
		SET is_rented = FALSE, active_rental_id = NULL
		WHERE book_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"error", err,
	)

	return err
}

// Update applies a partial update: only non-nil fields are written.
// Returns false when no row matched.
func (r *BookWriteRepository) Update(ctx context.Context, bookID uuid.UUID, title *string, authorID *uuid.UUID) (bool, error) {
	const query = `
		UPDATE books
		SET title = COALESCE($2, title),
		    author_id = COALESCE($3, author_id)
		WHERE book_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, bookID, title, authorID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID, title, authorID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// Delete removes the book. Returns false when no row matched.
func (r *BookWriteRepository) Delete(ctx context.Context, bookID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM books
		WHERE book_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
