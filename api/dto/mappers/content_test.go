// ABOUTME: Tests for domain to DTO mapping
// ABOUTME: Covers derived link fields and empty-slice encoding guarantees

package mappers

import (
	"testing"

	"github.com/hedsouza/bigbmeetup/core/domain"
)

func TestToVideoResponse(t *testing.T) {
	v := domain.VideoContent{
		ID:           "abc123",
		Title:        "Monthly Meetup Recap",
		Description:  "Highlights from the June gathering",
		YouTubeID:    "abc123",
		ThumbnailURL: "https://img.youtube.com/vi/abc123/maxresdefault.jpg",
		Duration:     "12:04",
		PublishedAt:  "2026-06-14",
		Category:     domain.CategoryEpisode,
	}

	got := ToVideoResponse(v, "https://bigbmeetup.example")

	if got.ID != "abc123" || got.Title != v.Title || got.Duration != "12:04" {
		t.Errorf("unexpected mapped video: %+v", got)
	}
	if got.Category != "episode" {
		t.Errorf("expected category episode, got %q", got.Category)
	}
	if got.WatchURL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("unexpected watch url %q", got.WatchURL)
	}
	if got.EmbedURL != "https://www.youtube.com/embed/abc123" {
		t.Errorf("unexpected embed url %q", got.EmbedURL)
	}
	if got.PageURL != "https://bigbmeetup.example/videos/abc123" {
		t.Errorf("unexpected page url %q", got.PageURL)
	}
}

func TestToVideoListResponse_EmptyIsNotNil(t *testing.T) {
	got := ToVideoListResponse(nil, "", "https://bigbmeetup.example")

	if got.Videos == nil {
		t.Error("expected non-nil videos slice for empty page")
	}
	if len(got.Videos) != 0 {
		t.Errorf("expected empty videos, got %d", len(got.Videos))
	}
	if got.NextPageToken != "" {
		t.Errorf("expected empty token, got %q", got.NextPageToken)
	}
}

func TestToVideoListResponse_KeepsOrderAndToken(t *testing.T) {
	videos := []domain.VideoContent{
		{ID: "a", YouTubeID: "a"},
		{ID: "b", YouTubeID: "b"},
	}

	got := ToVideoListResponse(videos, "tok-2", "https://bigbmeetup.example")

	if len(got.Videos) != 2 || got.Videos[0].ID != "a" || got.Videos[1].ID != "b" {
		t.Errorf("unexpected videos: %+v", got.Videos)
	}
	if got.NextPageToken != "tok-2" {
		t.Errorf("expected token tok-2, got %q", got.NextPageToken)
	}
	if got.Videos[0].PageURL != "https://bigbmeetup.example/videos/a" {
		t.Errorf("unexpected page url %q", got.Videos[0].PageURL)
	}
}

func TestToPostListResponse(t *testing.T) {
	caption := "See you Saturday"
	posts := []domain.SocialPost{
		{
			ID:          "p1",
			Caption:     &caption,
			MediaType:   domain.MediaTypeImage,
			MediaURL:    "https://example.com/p1.jpg",
			Permalink:   "https://www.instagram.com/p/p1/",
			PublishedAt: "2026-06-01T10:00:00+0000",
		},
	}

	got := ToPostListResponse(posts)

	if len(got.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(got.Posts))
	}
	if got.Posts[0].Caption == nil || *got.Posts[0].Caption != caption {
		t.Error("caption not carried over")
	}
	if got.Posts[0].MediaType != "IMAGE" {
		t.Errorf("unexpected media type %q", got.Posts[0].MediaType)
	}
}

func TestToPostListResponse_EmptyIsNotNil(t *testing.T) {
	got := ToPostListResponse(nil)
	if got.Posts == nil {
		t.Error("expected non-nil posts slice")
	}
}
