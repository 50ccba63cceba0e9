// ABOUTME: HTTP handler for the Instagram posts endpoint
// ABOUTME: Always replies 200, marking fallback content with a response header

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hedsouza/bigbmeetup/api/dto/mappers"
	"github.com/hedsouza/bigbmeetup/core/instagram"
	"github.com/hedsouza/bigbmeetup/pkg/utils/parse"
)

const postCacheControl = "public, s-maxage=900, stale-while-revalidate=3600"

const (
	defaultPostLimit = 6
	maxPostLimit     = 12
)

// PostsService is the slice of the Instagram service the handler needs
type PostsService interface {
	FetchRecentPosts(ctx context.Context, limit int) instagram.Result
}

// PostsHandler serves the recent posts endpoint
type PostsHandler struct {
	service PostsService
}

// NewPostsHandler creates a posts handler
func NewPostsHandler(service PostsService) *PostsHandler {
	return &PostsHandler{service: service}
}

// RegisterRoutes mounts the posts route on the router
func (h *PostsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/instagram/posts", h.GetPosts)
}

// GetPosts handles GET /api/instagram/posts
func (h *PostsHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	limit := parse.IntOrDefault(r.URL.Query().Get("limit"), defaultPostLimit)
	if limit < 1 {
		limit = defaultPostLimit
	}
	if limit > maxPostLimit {
		limit = maxPostLimit
	}

	result := h.service.FetchRecentPosts(r.Context(), limit)

	if result.Source == instagram.SourceFallback {
		w.Header().Set("X-Content-Source", "fallback")
	}
	w.Header().Set("Cache-Control", postCacheControl)
	writeJSON(w, http.StatusOK, mappers.ToPostListResponse(result.Posts))
}
