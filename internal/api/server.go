/*
server.go - HTTP router and middleware configuration

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for a browser frontend

ROUTES:
  GET    /healthz                 Liveness
  POST   /api/validate            Validation violations for inputs
  POST   /api/calculate           Full calculation with display strings
  POST   /api/projection          Direct solver call
  POST   /api/report/{format}     Rendered report (console, csv, html, pdf, ...)
  GET    /api/inputs/defaults     Initial form values
  GET    /api/inputs/{key}        Saved inputs
  PUT    /api/inputs/{key}        Save inputs
  DELETE /api/inputs/{key}        Forget inputs
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. An empty
// allowedOrigins permits any origin.
func NewRouter(h *Handler, allowedOrigins ...string) *chi.Mux {
	r := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", h.Validate)
		r.Post("/calculate", h.Calculate)
		r.Post("/projection", h.Projection)
		r.Post("/report/{format}", h.Report)

		r.Route("/inputs", func(r chi.Router) {
			r.Get("/defaults", h.DefaultInputs)
			r.Get("/{key}", h.GetInputs)
			r.Put("/{key}", h.PutInputs)
			r.Delete("/{key}", h.DeleteInputs)
		})
	})

	return r
}
