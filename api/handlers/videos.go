// ABOUTME: HTTP handlers for the YouTube video endpoints
// ABOUTME: Resolves the channel handle, pages videos, and filters blocked ids

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hedsouza/bigbmeetup/api/dto/mappers"
	"github.com/hedsouza/bigbmeetup/core/curation"
	"github.com/hedsouza/bigbmeetup/core/domain"
	coreerrors "github.com/hedsouza/bigbmeetup/core/errors"
	"github.com/hedsouza/bigbmeetup/core/interfaces"
	"github.com/hedsouza/bigbmeetup/pkg/utils/parse"
)

const videoCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

const (
	defaultMaxResults = 50
	maxResultsCeiling = 50
)

// VideoService is the slice of the YouTube service the handlers need
type VideoService interface {
	ResolveChannelID(ctx context.Context, handle string) (string, error)
	ListChannelVideos(ctx context.Context, channelID string, maxResults int, pageToken string) (*domain.VideoPage, error)
	FetchVideoByID(ctx context.Context, videoID string) (*domain.VideoContent, error)
}

// VideosHandler serves the channel listing and single video endpoints
type VideosHandler struct {
	service       VideoService
	lists         curation.Lists
	channelHandle string
	baseURL       string
	logger        interfaces.Logger
}

// NewVideosHandler creates a videos handler. baseURL is the site's
// absolute base URL, carried into the response page links.
func NewVideosHandler(service VideoService, lists curation.Lists, channelHandle, baseURL string, logger interfaces.Logger) *VideosHandler {
	return &VideosHandler{
		service:       service,
		lists:         lists,
		channelHandle: channelHandle,
		baseURL:       baseURL,
		logger:        logger,
	}
}

// RegisterRoutes mounts the video routes on the router
func (h *VideosHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/youtube/videos", h.ListVideos)
	r.Get("/api/youtube/videos/{videoId}", h.GetVideo)
}

// ListVideos handles GET /api/youtube/videos
func (h *VideosHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	maxResults := parse.Clamp(parse.IntOrDefault(r.URL.Query().Get("maxResults"), defaultMaxResults), 1, maxResultsCeiling)
	pageToken := r.URL.Query().Get("pageToken")

	channelID, err := h.service.ResolveChannelID(ctx, h.channelHandle)
	if err != nil {
		h.writeListError(w, err)
		return
	}

	page, err := h.service.ListChannelVideos(ctx, channelID, maxResults, pageToken)
	if err != nil {
		h.writeListError(w, err)
		return
	}

	// Blocked ids are already dropped by the service; filtering again here
	// keeps the boundary safe if a cached page predates a list change.
	videos := curation.RemoveBlocked(page.Videos, h.lists)
	if len(videos) > maxResults {
		videos = videos[:maxResults]
	}

	w.Header().Set("Cache-Control", videoCacheControl)
	writeJSON(w, http.StatusOK, mappers.ToVideoListResponse(videos, page.NextPageToken, h.baseURL))
}

// GetVideo handles GET /api/youtube/videos/{videoId}
func (h *VideosHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")
	if videoID == "" {
		writeError(w, http.StatusBadRequest, "Video ID is required", "")
		return
	}

	// Blocked videos are not served at all, and we do not spend an
	// upstream call confirming they exist.
	if h.lists.IsBlocked(videoID) {
		writeError(w, http.StatusNotFound, "Video not found", "")
		return
	}

	video, err := h.service.FetchVideoByID(r.Context(), videoID)
	if err != nil {
		switch {
		case coreerrors.IsValidation(err):
			writeError(w, http.StatusBadRequest, "Video ID is required", "")
		case coreerrors.IsNotFound(err):
			writeError(w, http.StatusNotFound, "Video not found", "")
		case coreerrors.IsConfiguration(err):
			writeError(w, http.StatusInternalServerError, "YouTube API key not configured", "")
		default:
			h.logError("failed to fetch video", videoID, err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch video", err.Error())
		}
		return
	}

	w.Header().Set("Cache-Control", videoCacheControl)
	writeJSON(w, http.StatusOK, mappers.ToVideoResponse(*video, h.baseURL))
}

func (h *VideosHandler) writeListError(w http.ResponseWriter, err error) {
	switch {
	case coreerrors.IsConfiguration(err):
		writeError(w, http.StatusInternalServerError, "YouTube API key not configured", "")
	case coreerrors.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Channel not found", "")
	default:
		h.logError("failed to fetch videos", h.channelHandle, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch videos", err.Error())
	}
}

func (h *VideosHandler) logError(msg, subject string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Error(msg, map[string]interface{}{
		"subject": subject,
		"error":   err.Error(),
	})
}
