// ABOUTME: YouTube Data API v3 response payload schemas
// ABOUTME: Decoded explicitly so missing fields surface as typed errors, not panics

package youtube

// channelIDResponse is the shape of channels?part=id
type channelIDResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

// channelContentResponse is the shape of channels?part=contentDetails
type channelContentResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// playlistItemsResponse is the shape of playlistItems?part=snippet,contentDetails
type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// videoListResponse is the shape of videos?part=snippet,contentDetails,statistics
type videoListResponse struct {
	Items []videoItem `json:"items"`
}

// videoItem is a single item from the videos endpoint
type videoItem struct {
	ID             string          `json:"id"`
	Snippet        *videoSnippet   `json:"snippet"`
	ContentDetails *contentDetails `json:"contentDetails"`
}

// videoSnippet holds the descriptive fields of a video
type videoSnippet struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PublishedAt string          `json:"publishedAt"`
	Thumbnails  videoThumbnails `json:"thumbnails"`
}

// videoThumbnails lists the available preview sizes
type videoThumbnails struct {
	Default  *thumbnail `json:"default"`
	Medium   *thumbnail `json:"medium"`
	High     *thumbnail `json:"high"`
	Standard *thumbnail `json:"standard"`
	Maxres   *thumbnail `json:"maxres"`
}

// thumbnail is a single preview image reference
type thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// contentDetails holds the ISO 8601 duration of a video
type contentDetails struct {
	Duration string `json:"duration"`
}
