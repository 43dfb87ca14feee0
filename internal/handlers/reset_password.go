package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/services"
)

// PasswordResetter defines the interface that the service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, newPassword string) (*services.ResetPasswordResult, error)
}

// ResetPasswordRequest represents the JSON body for completing a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// One-time reset token
	// required: true
	Token string `json:"token"`
	// New password, 8 to 254 characters
	// required: true
	Password string `json:"password"`
}

// NewResetPasswordHandler returns an HTTP handler that exchanges a one-time
// reset token for a new password.
// @Summary Complete a password reset
// @Description Exchanges a one-time reset token and replaces the user's password.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} services.ResetPasswordResult "Password replaced"
// @Failure 400 {object} handlers.ErrorResponse "Invalid token, used token, or invalid password"
// @Failure 404 {object} handlers.ErrorResponse "Subject user does not exist"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.ResetPassword(r.Context(), req.Token, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken),
				errors.Is(err, services.ErrTokenUsed),
				errors.Is(err, services.ErrInvalidPassword):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
