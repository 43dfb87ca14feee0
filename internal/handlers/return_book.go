package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/services"
)

// BookReturner defines the interface that the service must implement.
type BookReturner interface {
	ReturnBook(ctx context.Context, bookID uuid.UUID) (*services.ReturnResult, error)
}

// NewReturnBookHandler returns an HTTP handler for returning a rented book.
// @Summary Return a rented book
// @Description Closes the book's active rental and computes the fine: 100 per day beyond the 7-day grace period.
// @Tags rentals
// @Produce json
// @Param bookID path string true "Book id"
// @Success 200 {object} services.ReturnResult "Updated book, closed rental, fine, and summary"
// @Failure 400 {object} handlers.ErrorResponse "Invalid book id"
// @Failure 404 {object} handlers.ErrorResponse "Book does not exist"
// @Failure 409 {object} handlers.ErrorResponse "Book is not rented"
// @Router /books/{bookID}/return [post]
// @Security BearerAuth
func NewReturnBookHandler(svc BookReturner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid book id")
			return
		}

		result, err := svc.ReturnBook(r.Context(), bookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrBookNotRented):
				writeError(w, http.StatusConflict, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
