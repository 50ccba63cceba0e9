// ABOUTME: Curation rules applying block-list and feature-list policy to videos
// ABOUTME: Provides display-time category and search filters over normalized content

package curation

import (
	"strings"

	"github.com/hedsouza/bigbmeetup/core/domain"
)

// Lists holds the static curation configuration. Membership is keyed by
// YouTubeID, never by the internal item ID.
type Lists struct {
	// Blocked contains video ids that must never be surfaced
	Blocked []string

	// Featured contains video ids promoted to the featured subset
	Featured []string
}

// IsBlocked reports whether a video id is on the block-list
func (l Lists) IsBlocked(youtubeID string) bool {
	return contains(l.Blocked, youtubeID)
}

// IsFeatured reports whether a video id is on the feature-list.
// A blocked id is never featured; the block-list takes precedence.
func (l Lists) IsFeatured(youtubeID string) bool {
	if l.IsBlocked(youtubeID) {
		return false
	}
	return contains(l.Featured, youtubeID)
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// RemoveBlocked returns the videos whose ids are not on the block-list,
// preserving upstream order. Applied at every boundary that returns
// content, so a regression in one layer cannot leak blocked content.
func RemoveBlocked(videos []domain.VideoContent, lists Lists) []domain.VideoContent {
	filtered := make([]domain.VideoContent, 0, len(videos))
	for _, video := range videos {
		if lists.IsBlocked(video.YouTubeID) {
			continue
		}
		filtered = append(filtered, video)
	}
	return filtered
}

// Partition splits videos into featured and regular subsets, preserving
// relative order within each. Blocked videos are excluded from both.
func Partition(videos []domain.VideoContent, lists Lists) (featured, regular []domain.VideoContent) {
	featured = make([]domain.VideoContent, 0, len(videos))
	regular = make([]domain.VideoContent, 0, len(videos))

	for _, video := range videos {
		if lists.IsBlocked(video.YouTubeID) {
			continue
		}
		if lists.IsFeatured(video.YouTubeID) {
			featured = append(featured, video)
		} else {
			regular = append(regular, video)
		}
	}
	return featured, regular
}

// FilterByCategory returns the videos matching the given category.
// An empty category or "all" is the identity filter.
func FilterByCategory(videos []domain.VideoContent, category string) []domain.VideoContent {
	if category == "" || category == "all" {
		return videos
	}

	filtered := make([]domain.VideoContent, 0, len(videos))
	for _, video := range videos {
		if string(video.Category) == category {
			filtered = append(filtered, video)
		}
	}
	return filtered
}

// Search returns videos whose title or description contains the query,
// case-insensitively. An empty query is the identity filter.
func Search(videos []domain.VideoContent, query string) []domain.VideoContent {
	if query == "" {
		return videos
	}

	needle := strings.ToLower(query)
	filtered := make([]domain.VideoContent, 0, len(videos))
	for _, video := range videos {
		if strings.Contains(strings.ToLower(video.Title), needle) ||
			strings.Contains(strings.ToLower(video.Description), needle) {
			filtered = append(filtered, video)
		}
	}
	return filtered
}
