// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads settings from the environment and an optional local .env file

package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Port is the HTTP server port
	Port string `env:"PORT" envDefault:"8000"`

	// LogLevel is the minimum log level (debug/info/warn/error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFile is an optional rotating log file path
	LogFile string `env:"LOG_FILE"`

	// CacheType selects the cache backend (memory/redis)
	CacheType string `env:"CACHE_TYPE" envDefault:"memory"`

	// RedisAddress is the Redis server address
	RedisAddress string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// RedisPassword is the Redis authentication password
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis database number
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// YouTubeAPIKey is the YouTube Data API key. Absence is not a
	// startup error; the video endpoints surface it as a 500.
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`

	// YouTubeChannelHandle is the channel whose uploads are listed
	YouTubeChannelHandle string `env:"YOUTUBE_CHANNEL_HANDLE" envDefault:"@bigbmeetup"`

	// VideoCacheTTLSeconds is how long video fetches stay fresh
	VideoCacheTTLSeconds int `env:"VIDEO_CACHE_TTL" envDefault:"3600"`

	// InstagramAccessToken is the Graph API token. Absence downgrades
	// the posts endpoint to fallback content.
	InstagramAccessToken string `env:"INSTAGRAM_ACCESS_TOKEN"`

	// InstagramProfileURL overrides the public profile link
	InstagramProfileURL string `env:"INSTAGRAM_PROFILE_URL"`

	// PostsCacheTTLSeconds is how long post fetches stay fresh
	PostsCacheTTLSeconds int `env:"POSTS_CACHE_TTL" envDefault:"900"`

	// SiteURL is the site's public base URL, used for absolute links
	SiteURL string `env:"SITE_URL"`

	// BlockedVideoIDsRaw is a comma-separated list of video ids that
	// must never be served
	BlockedVideoIDsRaw string `env:"BLOCKED_VIDEO_IDS"`

	// FeaturedVideoIDsRaw is a comma-separated list of video ids to promote
	FeaturedVideoIDsRaw string `env:"FEATURED_VIDEO_IDS"`

	// RateLimitMax is the allowed requests per window per IP (0 disables)
	RateLimitMax int `env:"RATE_LIMIT_MAX" envDefault:"100"`

	// RateLimitWindowSeconds is the rate limit window length
	RateLimitWindowSeconds int `env:"RATE_LIMIT_WINDOW" envDefault:"60"`

	// HTTPTimeoutSeconds is the timeout applied to upstream calls
	HTTPTimeoutSeconds int `env:"HTTP_TIMEOUT" envDefault:"10"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables.
// A .env file in the working directory is honored when present.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for structural errors
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	if c.CacheType != "memory" && c.CacheType != "redis" {
		return fmt.Errorf("unknown cache type %q (want memory or redis)", c.CacheType)
	}

	if c.CacheType == "redis" && c.RedisAddress == "" {
		return fmt.Errorf("redis cache requires REDIS_ADDRESS")
	}

	return nil
}

// Redis returns the Redis subset of the configuration
func (c *Config) Redis() RedisConfig {
	return RedisConfig{
		Address:  c.RedisAddress,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}

// VideoCacheTTL returns the video cache TTL as a duration
func (c *Config) VideoCacheTTL() time.Duration {
	return time.Duration(c.VideoCacheTTLSeconds) * time.Second
}

// PostsCacheTTL returns the posts cache TTL as a duration
func (c *Config) PostsCacheTTL() time.Duration {
	return time.Duration(c.PostsCacheTTLSeconds) * time.Second
}

// HTTPTimeout returns the upstream call timeout as a duration
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// BlockedVideoIDs returns the parsed block-list
func (c *Config) BlockedVideoIDs() []string {
	return splitIDs(c.BlockedVideoIDsRaw)
}

// FeaturedVideoIDs returns the parsed feature-list
func (c *Config) FeaturedVideoIDs() []string {
	return splitIDs(c.FeaturedVideoIDsRaw)
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

var schemePattern = regexp.MustCompile(`^https?://`)

// BaseURL returns the site's absolute base URL without a trailing
// slash. A bare host gets an https scheme; when unset, a localhost
// URL on the configured port is assumed.
func (c *Config) BaseURL() string {
	siteURL := strings.TrimSpace(c.SiteURL)
	if siteURL == "" {
		return "http://localhost:" + c.Port
	}

	siteURL = strings.TrimRight(siteURL, "/")
	if !schemePattern.MatchString(siteURL) {
		siteURL = "https://" + siteURL
	}
	return siteURL
}
