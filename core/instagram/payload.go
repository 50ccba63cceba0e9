// ABOUTME: Instagram Graph API response payload schemas
// ABOUTME: Decoded explicitly so missing fields surface as typed errors

package instagram

// mediaListResponse is the shape of /me/media
type mediaListResponse struct {
	Data []mediaItem `json:"data"`
}

// mediaItem is one entry from the media listing
type mediaItem struct {
	ID           string  `json:"id"`
	Caption      *string `json:"caption"`
	MediaType    string  `json:"media_type"`
	MediaURL     string  `json:"media_url"`
	Permalink    string  `json:"permalink"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Timestamp    string  `json:"timestamp"`
}
