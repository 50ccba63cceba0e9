// ABOUTME: Response DTOs for the video endpoints
// ABOUTME: Wire contract returned to the page layer, kept separate from domain models

package responses

// VideoResponse is a single video on the wire
type VideoResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	YouTubeID    string `json:"youtubeId"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Duration     string `json:"duration,omitempty"`
	PublishedAt  string `json:"publishedAt"`
	Category     string `json:"category,omitempty"`
	WatchURL     string `json:"watchUrl"`
	EmbedURL     string `json:"embedUrl"`
	PageURL      string `json:"pageUrl"`
}

// VideoListResponse is one page of channel videos
type VideoListResponse struct {
	Videos        []VideoResponse `json:"videos"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}
