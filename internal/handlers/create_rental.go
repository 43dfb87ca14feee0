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

// RentalCreator defines the interface that the service must implement.
type RentalCreator interface {
	CreateRental(ctx context.Context, bookID, userID uuid.UUID) (*models.RentalDetail, error)
}

// CreateRentalRequest represents the JSON body for creating a rental
// swagger:model CreateRentalRequest
type CreateRentalRequest struct {
	// Book id
	// required: true
	BookID uuid.UUID `json:"bookId"`

	// User id
	// required: true
	UserID uuid.UUID `json:"userId"`
}

// NewCreateRentalHandler returns an HTTP handler for renting a book.
// @Summary Rent a book to a user
// @Description Creates a rental. The book must exist and be available; the user must exist and hold fewer than three active rentals.
// @Tags rentals
// @Accept json
// @Produce json
// @Param createRentalRequest body handlers.CreateRentalRequest true "Rental creation request"
// @Success 201 {object} models.RentalDetail "Created rental with book and user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Book or user does not exist"
// @Failure 409 {object} handlers.ErrorResponse "Book already rented or rental limit exceeded"
// @Router /rentals [post]
// @Security BearerAuth
func NewCreateRentalHandler(svc RentalCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRentalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rental, err := svc.CreateRental(r.Context(), req.BookID, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound), errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrBookAlreadyRented), errors.Is(err, services.ErrRentalLimitExceeded):
				writeError(w, http.StatusConflict, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, rental)
	}
}
