package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/services"
)

// PasswordRecoverer defines the interface that the service must implement.
type PasswordRecoverer interface {
	RecoverPassword(ctx context.Context, email string) (*services.RecoverPasswordResult, error)
}

// RecoverPasswordRequest represents the JSON body for starting a password reset
// swagger:model RecoverPasswordRequest
type RecoverPasswordRequest struct {
	// Registered email address
	// required: true
	Email string `json:"email"`
}

// NewRecoverPasswordHandler returns an HTTP handler that starts the password
// recovery flow by emailing a one-time reset token.
// @Summary Start password recovery
// @Description Issues a short-lived reset token and emails it to the given address.
// @Tags auth
// @Accept json
// @Produce json
// @Param recoverPasswordRequest body handlers.RecoverPasswordRequest true "Target email"
// @Success 200 {object} services.RecoverPasswordResult "Reset instructions dispatched"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Email not registered"
// @Router /recover-password [post]
func NewRecoverPasswordHandler(svc PasswordRecoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecoverPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.RecoverPassword(r.Context(), req.Email)
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

		writeJSON(w, http.StatusOK, result)
	}
}
