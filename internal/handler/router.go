package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edalchemy/edalchemy-api/internal/auth"
	"github.com/edalchemy/edalchemy-api/internal/middleware"
)

// NewRouter builds the chi router: the auth routes under /api/auth, with the
// profile routes behind the bearer token middleware, plus a liveness probe.
func NewRouter(h *AuthHandler, tokens *auth.TokenService, logger *zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/password-reset/request", h.RequestPasswordReset)
		r.Post("/password-reset", h.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))
			r.Get("/profile", h.GetProfile)
			r.Put("/profile", h.UpdateProfile)
		})
	})

	return r
}
