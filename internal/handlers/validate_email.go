package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/services"
)

// EmailValidator defines the interface that the service must implement.
type EmailValidator interface {
	ValidateEmail(ctx context.Context, token string) (*services.ValidateEmailResult, error)
}

// ValidateEmailRequest represents the JSON body for validating an email address
// swagger:model ValidateEmailRequest
type ValidateEmailRequest struct {
	// One-time verification token
	// required: true
	Token string `json:"token"`
}

// NewValidateEmailHandler returns an HTTP handler for the verification token exchange.
// @Summary Validate an email address
// @Description Exchanges a one-time verification token and marks the subject user's email as verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param validateEmailRequest body handlers.ValidateEmailRequest true "Verification token"
// @Success 200 {object} services.ValidateEmailResult "Validation outcome"
// @Failure 400 {object} handlers.ErrorResponse "Invalid, expired, or already used token"
// @Failure 404 {object} handlers.ErrorResponse "Subject user does not exist"
// @Router /validate-email [post]
func NewValidateEmailHandler(svc EmailValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.ValidateEmail(r.Context(), req.Token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrTokenUsed):
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
