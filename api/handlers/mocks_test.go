// ABOUTME: Hand-rolled service and logger mocks for handler tests
// ABOUTME: Function fields let each test script the exact service behavior

package handlers

import (
	"context"

	"github.com/hedsouza/bigbmeetup/core/domain"
	"github.com/hedsouza/bigbmeetup/core/instagram"
)

type mockVideoService struct {
	resolveFunc  func(ctx context.Context, handle string) (string, error)
	listFunc     func(ctx context.Context, channelID string, maxResults int, pageToken string) (*domain.VideoPage, error)
	fetchFunc    func(ctx context.Context, videoID string) (*domain.VideoContent, error)
	fetchCalls   int
	lastMaxUsed  int
	lastPageUsed string
}

func (m *mockVideoService) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, handle)
	}
	return "UC-default", nil
}

func (m *mockVideoService) ListChannelVideos(ctx context.Context, channelID string, maxResults int, pageToken string) (*domain.VideoPage, error) {
	m.lastMaxUsed = maxResults
	m.lastPageUsed = pageToken
	if m.listFunc != nil {
		return m.listFunc(ctx, channelID, maxResults, pageToken)
	}
	return &domain.VideoPage{Videos: []domain.VideoContent{}}, nil
}

func (m *mockVideoService) FetchVideoByID(ctx context.Context, videoID string) (*domain.VideoContent, error) {
	m.fetchCalls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, videoID)
	}
	return &domain.VideoContent{ID: videoID, YouTubeID: videoID}, nil
}

type mockPostsService struct {
	result    instagram.Result
	lastLimit int
	calls     int
}

func (m *mockPostsService) FetchRecentPosts(ctx context.Context, limit int) instagram.Result {
	m.calls++
	m.lastLimit = limit
	return m.result
}

type mockLogger struct {
	errorCount int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errorCount++
}
