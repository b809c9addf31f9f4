package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edalchemy/edalchemy-api/internal/auth"
	"github.com/edalchemy/edalchemy-api/internal/model"
	"github.com/edalchemy/edalchemy-api/internal/repository"
	"github.com/edalchemy/edalchemy-api/internal/usecase"
	"github.com/edalchemy/edalchemy-api/internal/validation"
)

// response is the uniform JSON envelope returned by every endpoint.
type response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Token   string            `json:"token,omitempty"`
	User    *model.PublicUser `json:"user,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

// writeError maps the usecase error taxonomy to HTTP status codes. Anything
// unmapped is an internal failure: full detail goes to the log, the client
// only ever sees a generic message.
func writeError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var verrs *validation.Errors

	switch {
	case errors.As(err, &verrs):
		writeFailure(w, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, usecase.ErrEmailTaken):
		writeFailure(w, http.StatusBadRequest, "User already exists with this email")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		writeFailure(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, repository.ErrUserNotFound):
		writeFailure(w, http.StatusNotFound, "User not found")
	case errors.Is(err, repository.ErrResetTokenNotFound):
		writeFailure(w, http.StatusNotFound, "Password reset token not found")
	case errors.Is(err, usecase.ErrResetTokenAlreadyUsed):
		writeFailure(w, http.StatusBadRequest, "Password reset token has already been used")
	case errors.Is(err, usecase.ErrResetTokenExpired), errors.Is(err, auth.ErrTokenExpired):
		writeFailure(w, http.StatusUnauthorized, "Password reset token has expired")
	case errors.Is(err, auth.ErrTokenInvalid):
		writeFailure(w, http.StatusUnauthorized, "Invalid password reset token")
	default:
		logger.Error().Err(err).Msg("unexpected error")
		writeFailure(w, http.StatusInternalServerError, "Something went wrong")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
