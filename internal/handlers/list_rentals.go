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

// RentalLister defines the interface that the service must implement.
type RentalLister interface {
	ListAll(ctx context.Context) ([]models.RentalDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RentalDetail, error)
}

// NewListRentalsHandler returns an HTTP handler listing every rental.
// @Summary List all rentals
// @Description Returns every rental record, active and closed, joined with book and user.
// @Tags rentals
// @Produce json
// @Success 200 {array} models.RentalDetail "All rentals"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /rentals [get]
func NewListRentalsHandler(svc RentalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rentals, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if rentals == nil {
			rentals = []models.RentalDetail{}
		}
		writeJSON(w, http.StatusOK, rentals)
	}
}

// NewListUserRentalsHandler returns an HTTP handler listing one user's rentals.
// @Summary List rentals for a user
// @Description Returns every rental of the given user, joined with book and user.
// @Tags rentals
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {array} models.RentalDetail "User's rentals"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Router /users/{userID}/rentals [get]
func NewListUserRentalsHandler(svc RentalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		rentals, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if rentals == nil {
			rentals = []models.RentalDetail{}
		}
		writeJSON(w, http.StatusOK, rentals)
	}
}
