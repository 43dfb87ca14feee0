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

// BookDeleter defines the interface that the service must implement.
type BookDeleter interface {
	Delete(ctx context.Context, bookID uuid.UUID) (bool, error)
}

// NewDeleteBookHandler returns an HTTP handler that removes a book.
// @Summary Delete a book
// @Description Removes the book from the catalog. Rental history is kept.
// @Tags books
// @Produce json
// @Param bookID path string true "Book id"
// @Success 200 {object} handlers.UpdateResponse "Book removed"
// @Failure 400 {object} handlers.ErrorResponse "Malformed book id"
// @Failure 404 {object} handlers.ErrorResponse "Book does not exist"
// @Router /books/{bookID} [delete]
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid book id")
			return
		}

		ok, err := svc.Delete(r.Context(), bookID)
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

		writeJSON(w, http.StatusOK, UpdateResponse{OK: ok})
	}
}
