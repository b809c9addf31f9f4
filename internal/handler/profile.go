package handler

import (
	"net/http"

	"github.com/edalchemy/edalchemy-api/internal/middleware"
	"github.com/edalchemy/edalchemy-api/internal/payload"
	"github.com/edalchemy/edalchemy-api/internal/usecase"
)

// GetProfile handles GET /api/auth/profile. The route runs behind the
// Authenticate middleware, which resolves the bearer token to a user ID.
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.profileUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		User:    user,
	})
}

// UpdateProfile handles PUT /api/auth/profile. Only name, college, course and
// year are mutable here; absent fields keep their stored value.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req payload.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	user, err := h.profileUsecase.UpdateProfile(r.Context(), userID, usecase.UpdateProfileParams{
		Name:    req.Name,
		College: req.College,
		Course:  req.Course,
		Year:    req.Year,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Profile updated successfully!",
		User:    user,
	})
}
