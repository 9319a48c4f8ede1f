// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"mdpreview-api/api/middleware"
	"mdpreview-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

const (
	// Title is the OpenAPI title of the service
	Title = "Markdown Preview API"

	// Version is the API version reported by OpenAPI and /health
	Version = "1.0.0"

	description = "Converts uploaded documents and web pages to markdown, renders markdown as an HTML preview or raw source, and keeps per-session view state"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window

	// Limiter overrides RateLimit/RateWindow when set, so the caller can Stop it
	Limiter *middleware.RateLimiter
}

// corsHandler allows any origin. Downloads expose Content-Disposition so
// browser clients can read the file name.
func corsHandler() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID", "Retry-After"},
		MaxAge:         300,
	})
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = description
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler().Handler)

	// OpenAPI is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, humaConfig())

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests are never rate limited
	router.Use(corsHandler().Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	limiter := cfg.Limiter
	if limiter == nil && cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	api := humachi.New(router, humaConfig())

	return api, router
}
