package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/services"
)

// BookUpdater defines the interface that the service must implement.
type BookUpdater interface {
	Update(ctx context.Context, bookID uuid.UUID, title *string, authorID *uuid.UUID) (bool, error)
}

// UpdateBookRequest represents the JSON body for a partial book update
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	// New title, 3 to 64 characters
	Title *string `json:"title,omitempty"`
	// New author id, must exist
	AuthorID *uuid.UUID `json:"authorId,omitempty"`
}

// UpdateResponse reports whether a mutation took effect.
type UpdateResponse struct {
	OK bool `json:"ok"`
}

// NewUpdateBookHandler returns an HTTP handler for partial book updates.
// @Summary Update a book
// @Description Applies a partial update: only supplied fields are written.
// @Tags books
// @Accept json
// @Produce json
// @Param bookID path string true "Book id"
// @Param updateBookRequest body handlers.UpdateBookRequest true "Fields to change"
// @Success 200 {object} handlers.UpdateResponse "Update applied"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or invalid title"
// @Failure 404 {object} handlers.ErrorResponse "Book or author does not exist"
// @Router /books/{bookID} [put]
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid book id")
			return
		}

		var req UpdateBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		ok, err := svc.Update(r.Context(), bookID, req.Title, req.AuthorID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTitle):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrBookNotFound), errors.Is(err, services.ErrAuthorNotFound):
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
