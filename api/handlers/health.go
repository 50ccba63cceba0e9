// ABOUTME: Liveness endpoint for load balancers and uptime checks
// ABOUTME: Replies 200 with a fixed body and no caching

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler serves the health check route
type HealthHandler struct{}

// NewHealthHandler creates a health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes mounts the health route on the router
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Check)
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
