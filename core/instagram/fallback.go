// ABOUTME: Static fallback posts served when Instagram is unconfigured or unavailable
// ABOUTME: Shape-identical to live content so consumers cannot tell them apart structurally

package instagram

import "github.com/hedsouza/bigbmeetup/core/domain"

func strPtr(s string) *string { return &s }

// fallbackPosts is the curated static content set. Every entry satisfies
// the same required fields as a live post.
var fallbackPosts = []domain.SocialPost{
	{
		ID:          "fallback-1",
		Caption:     strPtr("Community comes alive at bigbmeetup — celebrating art, culture, and togetherness in every moment."),
		MediaType:   domain.MediaTypeImage,
		MediaURL:    "/images/hero/83.jpg",
		Permalink:   "https://www.instagram.com/bigbmeetup/",
		PublishedAt: "2024-01-01T00:00:00Z",
	},
	{
		ID:          "fallback-2",
		Caption:     strPtr("Highlights from our latest gathering inspiring purpose-driven collaboration across Qatar."),
		MediaType:   domain.MediaTypeImage,
		MediaURL:    "/images/hero/84.jpg",
		Permalink:   "https://www.instagram.com/bigbmeetup/",
		PublishedAt: "2024-01-02T00:00:00Z",
	},
	{
		ID:          "fallback-3",
		Caption:     strPtr("bigbmeetup pillars in action: sport, sustainability, inclusion, and compassion powering the movement."),
		MediaType:   domain.MediaTypeImage,
		MediaURL:    "/images/hero/85.jpg",
		Permalink:   "https://www.instagram.com/bigbmeetup/",
		PublishedAt: "2024-01-03T00:00:00Z",
	},
}

// FallbackPosts returns a copy of the static content set, truncated to limit
// when limit is positive and smaller than the set.
func FallbackPosts(limit int) []domain.SocialPost {
	posts := make([]domain.SocialPost, len(fallbackPosts))
	copy(posts, fallbackPosts)
	if limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	return posts
}
