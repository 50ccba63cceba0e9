// ABOUTME: Chi router construction with CORS, logging, and rate limiting
// ABOUTME: Handlers register their own routes on the returned router

package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hedsouza/bigbmeetup/api/middleware"
	"github.com/hedsouza/bigbmeetup/core/interfaces"
)

// APIConfig holds configuration for the router
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window, 0 disables limiting
	RateWindow time.Duration // rate limit window
}

// RouteRegistrar is implemented by handlers that mount their own routes
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter creates a router with the shared middleware stack applied
func NewRouter(cfg APIConfig, handlers ...RouteRegistrar) chi.Router {
	router := chi.NewRouter()

	// CORS first so preflight requests never hit the rate limiter
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID", "X-Content-Source"},
		MaxAge:         300,
	}))

	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	return router
}
