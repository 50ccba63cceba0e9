// ABOUTME: Mapping functions between domain models and response DTOs
// ABOUTME: Adds derived YouTube watch and embed links while converting

package mappers

import (
	"github.com/hedsouza/bigbmeetup/api/dto/responses"
	"github.com/hedsouza/bigbmeetup/core/domain"
	"github.com/hedsouza/bigbmeetup/core/youtube"
)

// ToVideoResponse converts a domain video to its wire form. baseURL is
// the site's absolute base URL, used to build the canonical page link.
func ToVideoResponse(v domain.VideoContent, baseURL string) responses.VideoResponse {
	return responses.VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		YouTubeID:    v.YouTubeID,
		ThumbnailURL: v.ThumbnailURL,
		Duration:     v.Duration,
		PublishedAt:  v.PublishedAt,
		Category:     string(v.Category),
		WatchURL:     youtube.WatchURL(v.YouTubeID),
		EmbedURL:     youtube.EmbedURL(v.YouTubeID),
		PageURL:      baseURL + "/videos/" + v.YouTubeID,
	}
}

// ToVideoListResponse converts one page of videos.
// The videos slice is always non-nil so an empty page encodes as [].
func ToVideoListResponse(videos []domain.VideoContent, nextPageToken, baseURL string) responses.VideoListResponse {
	out := responses.VideoListResponse{
		Videos:        make([]responses.VideoResponse, 0, len(videos)),
		NextPageToken: nextPageToken,
	}
	for _, v := range videos {
		out.Videos = append(out.Videos, ToVideoResponse(v, baseURL))
	}
	return out
}

// ToPostResponse converts a domain post to its wire form
func ToPostResponse(p domain.SocialPost) responses.PostResponse {
	return responses.PostResponse{
		ID:           p.ID,
		Caption:      p.Caption,
		MediaType:    string(p.MediaType),
		MediaURL:     p.MediaURL,
		ThumbnailURL: p.ThumbnailURL,
		Permalink:    p.Permalink,
		PublishedAt:  p.PublishedAt,
	}
}

// ToPostListResponse converts a list of posts, never returning a nil slice
func ToPostListResponse(posts []domain.SocialPost) responses.PostListResponse {
	out := responses.PostListResponse{Posts: make([]responses.PostResponse, 0, len(posts))}
	for _, p := range posts {
		out.Posts = append(out.Posts, ToPostResponse(p))
	}
	return out
}
