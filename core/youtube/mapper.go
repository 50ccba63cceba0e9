// ABOUTME: Maps YouTube API video items to the internal VideoContent model
// ABOUTME: Pure and total; fails with a MappingError naming the missing field

package youtube

import (
	"strings"

	"github.com/hedsouza/bigbmeetup/core/domain"
	coreerrors "github.com/hedsouza/bigbmeetup/core/errors"
	"github.com/hedsouza/bigbmeetup/pkg/utils/duration"
)

const apiName = "youtube"

// mapVideoItem converts one videos-endpoint item to a VideoContent.
// Required fields are the video id and snippet; everything else has a
// defined fallback so downstream consumers never see a partial item.
func mapVideoItem(item videoItem) (domain.VideoContent, error) {
	if item.ID == "" {
		return domain.VideoContent{}, &coreerrors.MappingError{API: apiName, Field: "id"}
	}

	if item.Snippet == nil {
		return domain.VideoContent{}, &coreerrors.MappingError{API: apiName, Field: "snippet"}
	}

	video := domain.VideoContent{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		YouTubeID:    item.ID,
		ThumbnailURL: bestThumbnail(item.ID, item.Snippet.Thumbnails),
		PublishedAt:  datePart(item.Snippet.PublishedAt),
		Category:     domain.CategoryEpisode,
	}

	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		video.Duration = duration.Format(item.ContentDetails.Duration)
		if duration.IsShortForm(item.ContentDetails.Duration) {
			video.Category = domain.CategoryShort
		}
	}

	return video, nil
}

// bestThumbnail prefers the highest-resolution provider thumbnail and
// falls back to the deterministic img.youtube.com template.
func bestThumbnail(videoID string, thumbs videoThumbnails) string {
	for _, candidate := range []*thumbnail{thumbs.Maxres, thumbs.High, thumbs.Medium} {
		if candidate != nil && candidate.URL != "" {
			return candidate.URL
		}
	}
	return ThumbnailURL(videoID, QualityMaxres)
}

// datePart truncates an ISO-8601 timestamp to its date component
func datePart(timestamp string) string {
	if idx := strings.IndexByte(timestamp, 'T'); idx >= 0 {
		return timestamp[:idx]
	}
	return timestamp
}
