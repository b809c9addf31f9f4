// Package handler exposes the authentication operations over HTTP with a
// uniform {success, message, token?, user?} JSON envelope.
package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edalchemy/edalchemy-api/internal/payload"
	"github.com/edalchemy/edalchemy-api/internal/usecase"
	"github.com/edalchemy/edalchemy-api/internal/validation"
)

// AuthHandler serves registration, login, profile and password reset routes.
type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	profileUsecase usecase.ProfileUsecase
	resetUsecase   usecase.PasswordResetUsecase
	validate       *validation.Validator
	logger         *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	profileUsecase usecase.ProfileUsecase,
	resetUsecase usecase.PasswordResetUsecase,
	validate *validation.Validator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		profileUsecase: profileUsecase,
		resetUsecase:   resetUsecase,
		validate:       validate,
		logger:         logger,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		College:  req.College,
		Course:   req.Course,
		Year:     req.Year,
		UserType: req.UserType,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "User registered successfully!",
		Token:   result.Token,
		User:    &result.User,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		// Malformed login input gets the same response as bad credentials,
		// so the validation rules cannot be probed for enumeration.
		writeFailure(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	result, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Login successful!",
		Token:   result.Token,
		User:    &result.User,
	})
}
