package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
)

const rentalDetailColumns = `
	r.rental_id, r.book_id, r.user_id, r.started_at, r.returned_at,
	b.book_id AS b_book_id, b.title AS b_title, b.author_id AS b_author_id,
	b.is_rented AS b_is_rented, b.active_rental_id AS b_active_rental_id, b.created_at AS b_created_at,
	u.user_id AS u_user_id, u.full_name AS u_full_name, u.email AS u_email,
	u.is_verified AS u_is_verified, u.created_at AS u_created_at, u.updated_at AS u_updated_at
`

// RentalReadRepository handles rental read operations.
type RentalReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRentalReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RentalReadRepository {
	return &RentalReadRepository{db: db, txGetter: txGetter}
}

func (r *RentalReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the rental with the given id, or nil when absent.
func (r *RentalReadRepository) GetByID(ctx context.Context, rentalID uuid.UUID) (*models.RentalDB, error) {
	const query = `
		SELECT rental_id, book_id, user_id, started_at, returned_at
		FROM rentals
		WHERE rental_id = $1
	`

	var rental models.RentalDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &rental, query, rentalID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rentalID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// CountActiveByUser counts the user's rentals with no return date.
func (r *RentalReadRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM rentals
		WHERE user_id = $1 AND returned_at IS NULL
	`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListAll returns every rental, joined with book and user, oldest first.
func (r *RentalReadRepository) ListAll(ctx context.Context) ([]models.RentalDetail, error) {
	query := `
		SELECT ` + rentalDetailColumns + `
		FROM rentals r
		JOIN books b ON b.book_id = r.book_id
		JOIN users u ON u.user_id = r.user_id
		ORDER BY r.started_at
	`
	return r.listDetails(ctx, query)
}

// ListByUser returns every rental of one user, joined with book and user.
func (r *RentalReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RentalDetail, error) {
	query := `
		SELECT ` + rentalDetailColumns + `
		FROM rentals r
		JOIN books b ON b.book_id = r.book_id
		JOIN users u ON u.user_id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.started_at
	`
	return r.listDetails(ctx, query, userID)
}

func (r *RentalReadRepository) listDetails(ctx context.Context, query string, args ...any) ([]models.RentalDetail, error) {
	rows, err := r.executor(ctx).QueryxContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.RentalDetail
	for rows.Next() {
		var row rentalDetailRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		details = append(details, row.toDetail())
	}
	return details, rows.Err()
}

// rentalDetailRow is the flat scan target for rental+book+user joins.
type rentalDetailRow struct {
	models.RentalDB
	BBookID         uuid.UUID  `db:"b_book_id"`
	BTitle          string     `db:"b_title"`
	BAuthorID       uuid.UUID  `db:"b_author_id"`
	BIsRented       bool       `db:"b_is_rented"`
	BActiveRentalID *uuid.UUID `db:"b_active_rental_id"`
	BCreatedAt      time.Time  `db:"b_created_at"`
	UUserID         uuid.UUID  `db:"u_user_id"`
	UFullName       string     `db:"u_full_name"`
	UEmail          string     `db:"u_email"`
	UIsVerified     bool       `db:"u_is_verified"`
	UCreatedAt      time.Time  `db:"u_created_at"`
	UUpdatedAt      time.Time  `db:"u_updated_at"`
}

func (row rentalDetailRow) toDetail() models.RentalDetail {
	return models.RentalDetail{
		RentalDB: row.RentalDB,
		Book: models.BookDB{
			BookID:         row.BBookID,
			Title:          row.BTitle,
			AuthorID:       row.BAuthorID,
			IsRented:       row.BIsRented,
			ActiveRentalID: row.BActiveRentalID,
			CreatedAt:      row.BCreatedAt,
		},
		User: models.UserDB{
			UserID:     row.UUserID,
			FullName:   row.UFullName,
			Email:      row.UEmail,
			IsVerified: row.UIsVerified,
			CreatedAt:  row.UCreatedAt,
			UpdatedAt:  row.UUpdatedAt,
		},
	}
}

// RentalWriteRepository handles rental write operations.
type RentalWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRentalWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RentalWriteRepository {
	return &RentalWriteRepository{db: db, txGetter: txGetter}
}

func (r *RentalWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new rental row with no return date.
func (r *RentalWriteRepository) Save(ctx context.Context, rental models.RentalDB) error {
	const query = `
		INSERT INTO rentals (rental_id, book_id, user_id, started_at, returned_at)
		VALUES ($1, $2, $3, $4, NULL)
	`
	args := []any{rental.RentalID, rental.BookID, rental.UserID, rental.StartedAt}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Close sets the return date on an open rental, exactly once. A closed rental
// is never reopened, so the statement refuses rows already returned.
func (r *RentalWriteRepository) Close(ctx context.Context, rentalID uuid.UUID, returnedAt time.Time) error {
	const query = `
		UPDATE rentals
		SET returned_at = $2
		WHERE rental_id = $1 AND returned_at IS NULL
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, rentalID, returnedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rentalID, returnedAt},
		"error", err,
	)

	return err
}
