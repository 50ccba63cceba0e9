// ABOUTME: YouTube service handles channel resolution, listing and video detail fetches
// ABOUTME: Wraps upstream calls with read-through caching and in-flight de-duplication

package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hedsouza/bigbmeetup/core/curation"
	"github.com/hedsouza/bigbmeetup/core/domain"
	coreerrors "github.com/hedsouza/bigbmeetup/core/errors"
	"github.com/hedsouza/bigbmeetup/core/interfaces"
)

const (
	defaultEndpoint = "https://www.googleapis.com/youtube/v3"
	defaultCacheTTL = time.Hour

	// MaxResultsLimit is the provider-imposed page size ceiling
	MaxResultsLimit = 50
)

// Config holds YouTube service configuration
type Config struct {
	// APIKey is the YouTube Data API key. When empty every operation
	// returns a ConfigurationError before any I/O.
	APIKey string

	// Endpoint overrides the API base URL (used by tests)
	Endpoint string

	// CacheTTL is how long fetch results stay fresh; defaults to 1 hour
	CacheTTL time.Duration

	// Lists is the curation configuration. Blocked ids are dropped at
	// the fetch boundary, before pages are cached.
	Lists curation.Lists
}

// Service fetches and normalizes channel content from the YouTube Data API
type Service struct {
	deps     interfaces.Dependencies
	cfg      Config
	inflight singleflight.Group
}

// NewService creates a new YouTube service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &Service{
		deps: deps,
		cfg:  cfg,
	}
}

// requireAPIKey gates every operation on the provider credential
func (s *Service) requireAPIKey() error {
	if s.cfg.APIKey == "" {
		return &coreerrors.ConfigurationError{
			Setting: "YOUTUBE_API_KEY",
			Message: "not set",
		}
	}
	return nil
}

// ResolveChannelID translates a channel handle (e.g. "@bigbmeetup") into
// the provider's canonical channel identifier.
func (s *Service) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	if err := s.requireAPIKey(); err != nil {
		return "", err
	}

	handle = strings.TrimPrefix(handle, "@")
	cacheKey := "youtube:channel-id:" + handle

	if cached, err := s.getCachedString(ctx, cacheKey); err == nil && cached != "" {
		return cached, nil
	}

	result, err, _ := s.inflight.Do(cacheKey, func() (interface{}, error) {
		params := url.Values{}
		params.Set("part", "id")
		params.Set("forHandle", handle)

		var payload channelIDResponse
		if err := s.fetchJSON(ctx, "/channels", params, &payload); err != nil {
			return "", err
		}

		if len(payload.Items) == 0 {
			return "", &coreerrors.NotFoundError{Resource: "channel", ID: handle}
		}

		channelID := payload.Items[0].ID
		_ = s.cacheString(ctx, cacheKey, channelID)
		return channelID, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

// ListChannelVideos pages through a channel's uploads. The fetch is three
// sequential stages: resolve the uploads playlist, page its member ids,
// then batch-fetch detail for exactly that page's ids.
func (s *Service) ListChannelVideos(ctx context.Context, channelID string, maxResults int, pageToken string) (*domain.VideoPage, error) {
	if err := s.requireAPIKey(); err != nil {
		return nil, err
	}

	maxResults = clampMaxResults(maxResults)

	cacheKey := fmt.Sprintf("youtube:videos:%s:%d:%s", channelID, maxResults, pageToken)

	if cached, err := s.getCachedPage(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	result, err, _ := s.inflight.Do(cacheKey, func() (interface{}, error) {
		page, err := s.fetchVideoPage(ctx, channelID, maxResults, pageToken)
		if err != nil {
			return nil, err
		}
		_ = s.cachePage(ctx, cacheKey, page)
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.VideoPage), nil
}

func (s *Service) fetchVideoPage(ctx context.Context, channelID string, maxResults int, pageToken string) (*domain.VideoPage, error) {
	// Stage one: the channel's uploads playlist id
	channelParams := url.Values{}
	channelParams.Set("part", "contentDetails")
	channelParams.Set("id", channelID)

	var channelPayload channelContentResponse
	if err := s.fetchJSON(ctx, "/channels", channelParams, &channelPayload); err != nil {
		return nil, err
	}

	if len(channelPayload.Items) == 0 {
		return nil, &coreerrors.NotFoundError{Resource: "channel", ID: channelID}
	}

	uploadsPlaylistID := channelPayload.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploadsPlaylistID == "" {
		return nil, &coreerrors.MappingError{API: apiName, Field: "contentDetails.relatedPlaylists.uploads"}
	}

	// Stage two: one page of member video ids
	playlistParams := url.Values{}
	playlistParams.Set("part", "snippet,contentDetails")
	playlistParams.Set("playlistId", uploadsPlaylistID)
	playlistParams.Set("maxResults", strconv.Itoa(maxResults))
	if pageToken != "" {
		playlistParams.Set("pageToken", pageToken)
	}

	var playlistPayload playlistItemsResponse
	if err := s.fetchJSON(ctx, "/playlistItems", playlistParams, &playlistPayload); err != nil {
		return nil, err
	}

	videoIDs := make([]string, 0, len(playlistPayload.Items))
	for _, item := range playlistPayload.Items {
		if id := item.Snippet.ResourceID.VideoID; id != "" {
			videoIDs = append(videoIDs, id)
		}
	}

	if len(videoIDs) == 0 {
		return &domain.VideoPage{
			Videos:        []domain.VideoContent{},
			NextPageToken: playlistPayload.NextPageToken,
		}, nil
	}

	// Stage three: full detail for exactly this page's ids
	videoParams := url.Values{}
	videoParams.Set("part", "snippet,contentDetails,statistics")
	videoParams.Set("id", strings.Join(videoIDs, ","))

	var videoPayload videoListResponse
	if err := s.fetchJSON(ctx, "/videos", videoParams, &videoPayload); err != nil {
		return nil, err
	}

	videos := make([]domain.VideoContent, 0, len(videoPayload.Items))
	for _, item := range videoPayload.Items {
		video, err := mapVideoItem(item)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	return &domain.VideoPage{
		Videos:        curation.RemoveBlocked(videos, s.cfg.Lists),
		NextPageToken: playlistPayload.NextPageToken,
	}, nil
}

// FetchVideoByID fetches detail for a single video
func (s *Service) FetchVideoByID(ctx context.Context, videoID string) (*domain.VideoContent, error) {
	if err := s.requireAPIKey(); err != nil {
		return nil, err
	}

	if videoID == "" {
		return nil, &coreerrors.ValidationError{Field: "videoId", Message: "cannot be empty"}
	}

	// A blocked id is indistinguishable from a nonexistent one, and no
	// upstream call is spent confirming it exists.
	if s.cfg.Lists.IsBlocked(videoID) {
		return nil, &coreerrors.NotFoundError{Resource: "video", ID: videoID}
	}

	cacheKey := "youtube:video:" + videoID

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil {
			var video domain.VideoContent
			if err := json.Unmarshal(data, &video); err == nil {
				return &video, nil
			}
		}
	}

	result, err, _ := s.inflight.Do(cacheKey, func() (interface{}, error) {
		params := url.Values{}
		params.Set("part", "snippet,contentDetails,statistics")
		params.Set("id", videoID)

		var payload videoListResponse
		if err := s.fetchJSON(ctx, "/videos", params, &payload); err != nil {
			return nil, err
		}

		if len(payload.Items) == 0 {
			return nil, &coreerrors.NotFoundError{Resource: "video", ID: videoID}
		}

		video, err := mapVideoItem(payload.Items[0])
		if err != nil {
			return nil, err
		}

		if s.deps.Cache != nil {
			if data, err := json.Marshal(video); err == nil {
				_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cfg.CacheTTL)
			}
		}
		return &video, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.VideoContent), nil
}

// fetchJSON performs one API call and decodes the body into dest.
// All failure modes convert to typed errors; no raw provider error
// escapes this boundary.
func (s *Service) fetchJSON(ctx context.Context, path string, params url.Values, dest interface{}) error {
	params.Set("key", s.cfg.APIKey)
	requestURL := s.cfg.Endpoint + path + "?" + params.Encode()

	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return &coreerrors.UpstreamAPIError{API: apiName, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return &coreerrors.UpstreamAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status code",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return &coreerrors.UpstreamAPIError{API: apiName, Message: err.Error()}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &coreerrors.UpstreamAPIError{API: apiName, Message: "malformed response body"}
	}

	return nil
}

func clampMaxResults(maxResults int) int {
	if maxResults < 1 {
		return MaxResultsLimit
	}
	if maxResults > MaxResultsLimit {
		return MaxResultsLimit
	}
	return maxResults
}

func (s *Service) getCachedString(ctx context.Context, key string) (string, error) {
	if s.deps.Cache == nil {
		return "", fmt.Errorf("no cache configured")
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Service) cacheString(ctx context.Context, key, value string) error {
	if s.deps.Cache == nil {
		return nil
	}
	return s.deps.Cache.Set(ctx, key, []byte(value), s.cfg.CacheTTL)
}

func (s *Service) getCachedPage(ctx context.Context, key string) (*domain.VideoPage, error) {
	if s.deps.Cache == nil {
		return nil, fmt.Errorf("no cache configured")
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var page domain.VideoPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *Service) cachePage(ctx context.Context, key string, page *domain.VideoPage) error {
	if s.deps.Cache == nil {
		return nil
	}
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, key, data, s.cfg.CacheTTL)
}
