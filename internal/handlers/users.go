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

// UserReader defines the interface that the service must implement.
type UserReader interface {
	GetAllUsers(ctx context.Context) ([]models.UserDB, error)
	GetUserData(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler listing every registered user.
// @Summary List users
// @Description Returns all registered users.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "Registered users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.GetAllUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user by id.
// @Summary Get a user
// @Description Returns a single user by id.
// @Tags users
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} models.UserDB "User"
// @Failure 400 {object} handlers.ErrorResponse "Malformed user id"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Router /users/{userID} [get]
func NewGetUserHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		user, err := svc.GetUserData(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
