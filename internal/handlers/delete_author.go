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

// AuthorDeleter defines the interface that the service must implement.
type AuthorDeleter interface {
	Delete(ctx context.Context, authorID uuid.UUID) (bool, error)
}

// NewDeleteAuthorHandler returns an HTTP handler that removes an author and,
// by cascade, every book the author owns.
// @Summary Delete an author
// @Description Removes the author and all of their books. Rental history is kept.
// @Tags authors
// @Produce json
// @Param authorID path string true "Author id"
// @Success 200 {object} handlers.UpdateResponse "Author removed"
// @Failure 400 {object} handlers.ErrorResponse "Malformed author id"
// @Failure 404 {object} handlers.ErrorResponse "Author does not exist"
// @Router /authors/{authorID} [delete]
func NewDeleteAuthorHandler(svc AuthorDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := uuid.Parse(chi.URLParam(r, "authorID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid author id")
			return
		}

		ok, err := svc.Delete(r.Context(), authorID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthorNotFound):
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
