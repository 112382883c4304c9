// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and the request middleware chain

package api

import (
	"net/http"

	"cultural-search-api/api/middleware"
	"cultural-search-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

const (
	title   = "Cultural Search API"
	version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// CORSOrigins lists allowed origins; empty allows any
	CORSOrigins []string

	// RateLimiter enables per-IP rate limiting when set
	RateLimiter *middleware.RateLimiter
}

// NewAPI creates a Huma API on a chi router with the configured middleware.
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	// CORS must run first so preflight requests are never rate limited
	router.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	config := huma.DefaultConfig(title, version)
	config.Info.Description = "Multi-source search over Chinese cultural heritage resources with synonym expansion and AI keyword hints"

	return humachi.New(router, config), router
}
