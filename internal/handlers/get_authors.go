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

// AuthorGetter defines the interface that the service must implement.
type AuthorGetter interface {
	GetAll(ctx context.Context) ([]models.AuthorWithBooks, error)
	GetOne(ctx context.Context, authorID uuid.UUID) (*models.AuthorWithBooks, error)
}

// NewListAuthorsHandler returns an HTTP handler listing all authors with
// their books.
// @Summary List authors
// @Description Returns every author together with their books and each book's availability.
// @Tags authors
// @Produce json
// @Success 200 {array} models.AuthorWithBooks "Authors with books"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /authors [get]
func NewListAuthorsHandler(svc AuthorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := svc.GetAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if authors == nil {
			authors = []models.AuthorWithBooks{}
		}
		writeJSON(w, http.StatusOK, authors)
	}
}

// NewGetAuthorHandler returns an HTTP handler fetching one author with their
// books.
// @Summary Get an author
// @Description Returns a single author together with their books.
// @Tags authors
// @Produce json
// @Param authorID path string true "Author id"
// @Success 200 {object} models.AuthorWithBooks "Author with books"
// @Failure 400 {object} handlers.ErrorResponse "Malformed author id"
// @Failure 404 {object} handlers.ErrorResponse "Author does not exist"
// @Router /authors/{authorID} [get]
func NewGetAuthorHandler(svc AuthorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := uuid.Parse(chi.URLParam(r, "authorID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid author id")
			return
		}

		author, err := svc.GetOne(r.Context(), authorID)
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

		writeJSON(w, http.StatusOK, author)
	}
}
