// ABOUTME: VideoContent domain model represents one playable video surfaced by the site
// ABOUTME: Provides validation to ensure a video has required fields

package domain

// VideoCategory classifies a video by length
type VideoCategory string

const (
	// CategoryEpisode is regular long-form content
	CategoryEpisode VideoCategory = "episode"

	// CategoryShort is content of 60 seconds or less
	CategoryShort VideoCategory = "short"
)

// VideoContent represents a single video from the channel
type VideoContent struct {
	// ID is the unique identifier for the video within a fetch batch
	ID string `json:"id"`

	// Title is the video's headline
	Title string `json:"title"`

	// Description contains the video's summary text
	Description string `json:"description"`

	// YouTubeID is the provider's canonical video identifier.
	// It is stable across fetches and is the sole key used by
	// block-list and feature-list membership tests.
	YouTubeID string `json:"youtubeId"`

	// ThumbnailURL is the preview image URL
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// Duration is the human-readable duration label (e.g. "5:23")
	Duration string `json:"duration,omitempty"`

	// PublishedAt is the publication date (date-only ISO-8601)
	PublishedAt string `json:"publishedAt"`

	// Category is episode or short, derived from duration
	Category VideoCategory `json:"category,omitempty"`
}

// IsValid checks if the video has all required fields
func (v *VideoContent) IsValid() bool {
	if v.ID == "" {
		return false
	}

	if v.YouTubeID == "" {
		return false
	}

	return true
}

// VideoPage is one page of a channel listing
type VideoPage struct {
	// Videos are the page items in upstream order
	Videos []VideoContent

	// NextPageToken is the opaque provider cursor for the next page.
	// Empty means the listing is exhausted.
	NextPageToken string
}
