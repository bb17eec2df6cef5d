// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"inventory-api/internal/api/handler"
	"inventory-api/internal/api/middleware"
	"inventory-api/internal/auth"
)

// NewRouter sets up and returns a new HTTP router. Registration and login
// are open; every product route sits behind the bearer-token gate.
func NewRouter(authHandler *handler.AuthHandler, productHandler *handler.ProductHandler, tokens *auth.TokenManager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"inventory-api"}`))
	})

	// Authentication routes (unauthenticated)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Product API routes (bearer token required)
	r.Route("/products", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens))
		r.Post("/", productHandler.Create)
		r.Get("/", productHandler.List)
		r.Get("/{productID}", productHandler.GetByID)
		r.Put("/{productID}/quantity", productHandler.UpdateQuantity)
	})

	return r
}
