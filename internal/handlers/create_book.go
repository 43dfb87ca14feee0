package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/services"
)

// BookCreator defines the interface that the service must implement.
type BookCreator interface {
	Create(ctx context.Context, title string, authorID uuid.UUID) (*models.BookDetail, error)
}

// CreateBookRequest represents the JSON body for registering a book
// swagger:model CreateBookRequest
type CreateBookRequest struct {
	// Book title, 3 to 64 characters
	// required: true
	Title string `json:"title"`
	// Identifier of an existing author
	// required: true
	AuthorID uuid.UUID `json:"authorId"`
}

// NewCreateBookHandler returns an HTTP handler that registers a new book.
// @Summary Register a book
// @Description Adds a new book to the catalog for an existing author. New books start available.
// @Tags books
// @Accept json
// @Produce json
// @Param createBookRequest body handlers.CreateBookRequest true "Book data"
// @Success 201 {object} models.BookDetail "Created book"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or title"
// @Failure 404 {object} handlers.ErrorResponse "Author does not exist"
// @Router /books [post]
func NewCreateBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		book, err := svc.Create(r.Context(), req.Title, req.AuthorID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTitle):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrAuthorNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, book)
	}
}
