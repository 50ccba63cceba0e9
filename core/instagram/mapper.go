// ABOUTME: Maps Instagram Graph API media items to the internal SocialPost model
// ABOUTME: Pure and total; fails with a MappingError naming the missing field

package instagram

import (
	"github.com/hedsouza/bigbmeetup/core/domain"
	coreerrors "github.com/hedsouza/bigbmeetup/core/errors"
)

const apiName = "instagram"

// mapMediaItem converts one media listing entry to a SocialPost.
// Required fields are the post id and media URL. Video posts always get
// a thumbnail: the upstream thumbnail_url when present, otherwise the
// media URL itself, so the display layer can count on a static image.
func mapMediaItem(item mediaItem) (domain.SocialPost, error) {
	if item.ID == "" {
		return domain.SocialPost{}, &coreerrors.MappingError{API: apiName, Field: "id"}
	}

	if item.MediaURL == "" {
		return domain.SocialPost{}, &coreerrors.MappingError{API: apiName, Field: "media_url"}
	}

	post := domain.SocialPost{
		ID:          item.ID,
		Caption:     item.Caption,
		MediaType:   domain.MediaType(item.MediaType),
		MediaURL:    item.MediaURL,
		Permalink:   item.Permalink,
		PublishedAt: item.Timestamp,
	}

	if post.MediaType == domain.MediaTypeVideo {
		post.ThumbnailURL = item.ThumbnailURL
		if post.ThumbnailURL == "" {
			post.ThumbnailURL = item.MediaURL
		}
	}

	return post, nil
}
