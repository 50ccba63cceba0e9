// ABOUTME: Response DTOs for the Instagram posts endpoint
// ABOUTME: Wire contract returned to the page layer, kept separate from domain models

package responses

// PostResponse is a single social post on the wire
type PostResponse struct {
	ID           string  `json:"id"`
	Caption      *string `json:"caption,omitempty"`
	MediaType    string  `json:"mediaType"`
	MediaURL     string  `json:"mediaUrl"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
	Permalink    string  `json:"permalink"`
	PublishedAt  string  `json:"publishedAt"`
}

// PostListResponse wraps a list of posts
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}
