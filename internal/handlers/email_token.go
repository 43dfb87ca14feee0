package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/services"
)

// EmailTokenGenerator defines the interface that the service must implement.
type EmailTokenGenerator interface {
	GenerateEmailValidationToken(ctx context.Context, email string) (string, error)
}

// EmailTokenRequest represents the JSON body for requesting a fresh validation token
// swagger:model EmailTokenRequest
type EmailTokenRequest struct {
	// Registered email address
	// required: true
	Email string `json:"email"`
}

// EmailTokenResponse carries the freshly issued validation token.
type EmailTokenResponse struct {
	Token string `json:"tokenValidacion"`
}

// NewEmailTokenHandler returns an HTTP handler that issues a fresh email
// validation token for a registered but unverified user.
// @Summary Request a new email validation token
// @Description Issues a short-lived verification token and emails it to the given address.
// @Tags auth
// @Accept json
// @Produce json
// @Param emailTokenRequest body handlers.EmailTokenRequest true "Target email"
// @Success 200 {object} handlers.EmailTokenResponse "Issued token"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Email not registered"
// @Failure 409 {object} handlers.ErrorResponse "Email already verified"
// @Router /validate-email/token [post]
func NewEmailTokenHandler(svc EmailTokenGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := svc.GenerateEmailValidationToken(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrAlreadyVerified):
				writeError(w, http.StatusConflict, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, EmailTokenResponse{Token: token})
	}
}
