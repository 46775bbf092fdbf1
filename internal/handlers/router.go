// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/kesava936/money-muling-detection/internal/middleware"
)

type RouterConfig struct {
	CORSOrigin string
	RateLimit  float64
	RateBurst  int
}

func NewRouter(graph *GraphHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Cors(cfg.CORSOrigin))

	r.Get("/health", graph.Health)

	r.Route("/graph", func(r chi.Router) {
		r.With(middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst))).
			Post("/", graph.Upload)
		r.Get("/", graph.Current)
		r.Get("/patterns", graph.Patterns)
		r.Get("/stream", graph.Stream)

		r.Put("/filter", graph.Select)
		r.Delete("/filter", graph.Clear)
		r.Post("/filter/toggle", graph.Toggle)
	})

	return r
}
