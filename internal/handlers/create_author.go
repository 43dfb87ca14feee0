package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/services"
)

// AuthorCreator defines the interface that the service must implement.
type AuthorCreator interface {
	Create(ctx context.Context, fullName string) (*models.AuthorDB, error)
}

// CreateAuthorRequest represents the JSON body for registering an author
// swagger:model CreateAuthorRequest
type CreateAuthorRequest struct {
	// Author full name, 3 to 64 characters, unique
	// required: true
	FullName string `json:"fullName"`
}

// NewCreateAuthorHandler returns an HTTP handler that registers a new author.
// @Summary Register an author
// @Description Adds a new author. Full names are unique, compared case-sensitively.
// @Tags authors
// @Accept json
// @Produce json
// @Param createAuthorRequest body handlers.CreateAuthorRequest true "Author data"
// @Success 201 {object} models.AuthorDB "Created author"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or name"
// @Failure 409 {object} handlers.ErrorResponse "Author already registered"
// @Router /authors [post]
func NewCreateAuthorHandler(svc AuthorCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAuthorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		author, err := svc.Create(r.Context(), req.FullName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAuthorName):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrAuthorExists):
				writeError(w, http.StatusConflict, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, author)
	}
}
