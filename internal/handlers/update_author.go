package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/services"
)

// AuthorUpdater defines the interface that the service must implement.
type AuthorUpdater interface {
	Update(ctx context.Context, authorID uuid.UUID, fullName string) (*models.AuthorDB, error)
}

// UpdateAuthorRequest represents the JSON body for renaming an author
// swagger:model UpdateAuthorRequest
type UpdateAuthorRequest struct {
	// New full name, 3 to 64 characters
	// required: true
	FullName string `json:"fullName"`
}

// NewUpdateAuthorHandler returns an HTTP handler that renames an author.
// @Summary Update an author
// @Description Replaces the author's full name.
// @Tags authors
// @Accept json
// @Produce json
// @Param authorID path string true "Author id"
// @Param updateAuthorRequest body handlers.UpdateAuthorRequest true "New name"
// @Success 200 {object} models.AuthorDB "Updated author"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or invalid name"
// @Failure 404 {object} handlers.ErrorResponse "Author does not exist"
// @Router /authors/{authorID} [put]
func NewUpdateAuthorHandler(svc AuthorUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := uuid.Parse(chi.URLParam(r, "authorID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid author id")
			return
		}

		var req UpdateAuthorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		author, err := svc.Update(r.Context(), authorID, req.FullName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAuthorName):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrAuthorNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, author)
	}
}
