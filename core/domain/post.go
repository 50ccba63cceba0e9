// ABOUTME: SocialPost domain model represents one social media post
// ABOUTME: Normalized shape shared by live and fallback Instagram content

package domain

// MediaType identifies the kind of media in a post
type MediaType string

const (
	// MediaTypeImage is a single image post
	MediaTypeImage MediaType = "IMAGE"

	// MediaTypeVideo is a video post
	MediaTypeVideo MediaType = "VIDEO"

	// MediaTypeCarousel is a multi-media album post
	MediaTypeCarousel MediaType = "CAROUSEL_ALBUM"
)

// SocialPost represents a single Instagram post
type SocialPost struct {
	// ID is the provider's post identifier
	ID string `json:"id"`

	// Caption is the post text, nil when the post has none
	Caption *string `json:"caption"`

	// MediaType is IMAGE, VIDEO or CAROUSEL_ALBUM
	MediaType MediaType `json:"mediaType"`

	// MediaURL is the URL of the media asset
	MediaURL string `json:"mediaUrl"`

	// ThumbnailURL is a static preview image. Always populated for
	// video posts so the display layer has an image source.
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// Permalink is the post's public URL
	Permalink string `json:"permalink"`

	// PublishedAt is the post timestamp (ISO-8601)
	PublishedAt string `json:"publishedAt"`
}

// IsValid checks if the post has all required fields
func (p *SocialPost) IsValid() bool {
	if p.ID == "" {
		return false
	}

	if p.MediaURL == "" {
		return false
	}

	return true
}
