// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger with optional file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(1*time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client retries transient upstream failures with backoff:
//
//	client := standard.NewStandardHTTPClient(10 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger(logrus.Config{Level: "info"})
//	logger.Info("Fetched channel videos", map[string]interface{}{
//	    "channel_id": "UC123",
//	    "count":      12,
//	})
package infrastructure
