// ABOUTME: URL builders for YouTube playback, embed and thumbnail links
// ABOUTME: Thumbnails are derivable deterministically from a video id alone

package youtube

import "fmt"

// ThumbnailQuality selects a thumbnail resolution tier
type ThumbnailQuality string

const (
	QualityDefault  ThumbnailQuality = "default"
	QualityMedium   ThumbnailQuality = "mqdefault"
	QualityHigh     ThumbnailQuality = "hqdefault"
	QualityStandard ThumbnailQuality = "sddefault"
	QualityMaxres   ThumbnailQuality = "maxresdefault"
)

// ThumbnailURL returns the static thumbnail URL for a video id
func ThumbnailURL(videoID string, quality ThumbnailQuality) string {
	if quality == "" {
		quality = QualityMaxres
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", videoID, quality)
}

// EmbedURL returns the embeddable player URL for a video id
func EmbedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", videoID)
}

// WatchURL returns the public watch page URL for a video id
func WatchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}
