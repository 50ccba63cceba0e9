// ABOUTME: Instagram service fetches recent posts for the configured account
// ABOUTME: Downgrades misconfiguration and upstream failure to static fallback content

package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hedsouza/bigbmeetup/core/domain"
	"github.com/hedsouza/bigbmeetup/core/interfaces"
)

const (
	defaultEndpoint   = "https://graph.instagram.com"
	defaultProfileURL = "https://www.instagram.com/bigbmeetup/"
	defaultCacheTTL   = 15 * time.Minute
	defaultLimit      = 6

	mediaFields = "id,caption,media_type,media_url,permalink,thumbnail_url,timestamp"
)

// Source tells callers whether a result carries live or fallback content
type Source string

const (
	// SourceLive means the posts came from the provider
	SourceLive Source = "live"

	// SourceFallback means the static content set was served
	SourceFallback Source = "fallback"
)

// Result is the outcome of a posts fetch. There is no error case: any
// failure downgrades to fallback content, and Source records which
// happened so callers and tests can tell without inspecting logs.
type Result struct {
	Posts  []domain.SocialPost
	Source Source
}

// Config holds Instagram service configuration
type Config struct {
	// AccessToken is the Graph API token. When empty the service serves
	// fallback content and logs a warning.
	AccessToken string

	// Endpoint overrides the API base URL (used by tests)
	Endpoint string

	// ProfileURL overrides the public profile link
	ProfileURL string

	// CacheTTL is how long fetched posts stay fresh; defaults to 15 minutes
	CacheTTL time.Duration
}

// Service fetches and normalizes posts from the Instagram Graph API
type Service struct {
	deps     interfaces.Dependencies
	cfg      Config
	inflight singleflight.Group
}

// NewService creates a new Instagram service instance
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

// ProfileURL returns the public profile link for the configured account
func (s *Service) ProfileURL() string {
	if s.cfg.ProfileURL != "" {
		return s.cfg.ProfileURL
	}
	return defaultProfileURL
}

// FetchRecentPosts returns up to limit most recent posts, in the
// provider's most-recent-first order. It never fails: misconfiguration
// and upstream errors both downgrade to the static fallback set.
func (s *Service) FetchRecentPosts(ctx context.Context, limit int) Result {
	if limit <= 0 {
		limit = defaultLimit
	}

	if s.cfg.AccessToken == "" {
		s.warn("Instagram access token not configured, serving fallback posts", nil)
		return Result{Posts: FallbackPosts(limit), Source: SourceFallback}
	}

	cacheKey := fmt.Sprintf("instagram:posts:%d", limit)

	if posts, err := s.getCachedPosts(ctx, cacheKey); err == nil {
		return Result{Posts: posts, Source: SourceLive}
	}

	result, _, _ := s.inflight.Do(cacheKey, func() (interface{}, error) {
		posts, err := s.fetchPosts(ctx, limit)
		if err != nil {
			s.warn("Instagram fetch failed, serving fallback posts", map[string]interface{}{
				"error": err.Error(),
			})
			return Result{Posts: FallbackPosts(limit), Source: SourceFallback}, nil
		}

		_ = s.cachePosts(ctx, cacheKey, posts)
		return Result{Posts: posts, Source: SourceLive}, nil
	})

	return result.(Result)
}

// fetchPosts performs the media listing call. The provider returns items
// already most-recent-first; no additional sort is applied.
func (s *Service) fetchPosts(ctx context.Context, limit int) ([]domain.SocialPost, error) {
	params := url.Values{}
	params.Set("fields", mediaFields)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("access_token", s.cfg.AccessToken)

	requestURL := s.cfg.Endpoint + "/me/media?" + params.Encode()

	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("instagram returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	var payload mediaListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}

	if payload.Data == nil {
		return nil, fmt.Errorf("response missing data array")
	}

	posts := make([]domain.SocialPost, 0, len(payload.Data))
	for _, item := range payload.Data {
		post, err := mapMediaItem(item)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (s *Service) warn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) getCachedPosts(ctx context.Context, key string) ([]domain.SocialPost, error) {
	if s.deps.Cache == nil {
		return nil, fmt.Errorf("no cache configured")
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var posts []domain.SocialPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) cachePosts(ctx context.Context, key string, posts []domain.SocialPost) error {
	if s.deps.Cache == nil {
		return nil
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, key, data, s.cfg.CacheTTL)
}
