package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/services"
)

// BookGetter defines the interface that the service must implement.
type BookGetter interface {
	ListAvailable(ctx context.Context) ([]models.BookDetail, error)
	GetByID(ctx context.Context, bookID uuid.UUID) (*services.BookWithEstimate, error)
}

// NewListBooksHandler returns an HTTP handler listing all available books.
// @Summary List available books
// @Description Returns every book that is not currently rented, with author data.
// @Tags books
// @Produce json
// @Success 200 {array} models.BookDetail "Available books"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /books [get]
func NewListBooksHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.ListAvailable(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if books == nil {
			books = []models.BookDetail{}
		}
		writeJSON(w, http.StatusOK, books)
	}
}

// NewGetBookHandler returns an HTTP handler fetching one book by id. For a
// rented book the response includes the estimated return date.
// @Summary Get a book
// @Description Returns a single book; rented books carry their estimated return date.
// @Tags books
// @Produce json
// @Param bookID path string true "Book id"
// @Success 200 {object} services.BookWithEstimate "Book with optional estimated return"
// @Failure 400 {object} handlers.ErrorResponse "Malformed book id"
// @Failure 404 {object} handlers.ErrorResponse "Book does not exist"
// @Security BearerAuth
// @Router /books/{bookID} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid book id")
			return
		}

		book, err := svc.GetByID(r.Context(), bookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}
