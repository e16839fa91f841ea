package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", apiHandler.RegisterHandler)
		r.Post("/login", apiHandler.LoginHandler)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// User-authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.JWTAuthMiddleware)

			r.Post("/chat", apiHandler.ChatHandler)
			r.Get("/history", apiHandler.HistoryHandler)
			r.Delete("/history", apiHandler.ClearHistoryHandler)
			r.Post("/logout", apiHandler.LogoutHandler)

			// Account management
			r.Post("/password", apiHandler.ChangePasswordHandler)
			r.Put("/profile", apiHandler.UpdateProfileHandler)
			r.Delete("/account", apiHandler.DeleteAccountHandler)

			// Admin (demo account only)
			r.Post("/admin/reset", apiHandler.ResetHandler)
		})
	})

	return r
}
