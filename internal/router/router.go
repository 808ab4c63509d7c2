// Package router mounts every HTTP route on a chi mux.
package router

import (
	"net/http"

	"homenest-backend/internal/handlers"
	"homenest-backend/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type Handlers struct {
	Sliders    *handlers.SliderHandler
	Properties *handlers.PropertyHandler
	Reviews    *handlers.ReviewHandler
	Health     *handlers.HealthHandler
}

// New builds the mux. All API routes live under /api.
func New(h Handlers, log zerolog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", logger.RequestIDHeader},
		ExposedHeaders:   []string{logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handlers.Home)
	r.Get("/health", h.Health.Check)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sliders", handlers.Handle(h.Sliders.List))
		r.Get("/test", handlers.Handle(h.Sliders.Status))

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", handlers.Handle(h.Properties.List))
			r.Post("/", handlers.Handle(h.Properties.Create))
			r.Get("/featured", handlers.Handle(h.Properties.Featured))
			r.Get("/{id}", handlers.Handle(h.Properties.Get))
			r.Put("/{id}", handlers.Handle(h.Properties.Update))
			r.Delete("/{id}", handlers.Handle(h.Properties.Delete))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", handlers.Handle(h.Reviews.List))
			r.Post("/", handlers.Handle(h.Reviews.Create))
			r.Get("/property/{propertyId}", handlers.Handle(h.Reviews.ByProperty))
			r.Get("/user/{userEmail}", handlers.Handle(h.Reviews.ByUser))
			r.Delete("/{id}", handlers.Handle(h.Reviews.Delete))
		})
	})

	return r
}
