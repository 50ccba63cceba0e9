// ABOUTME: Main entry point for the bigbmeetup API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hedsouza/bigbmeetup/api"
	"github.com/hedsouza/bigbmeetup/api/handlers"
	"github.com/hedsouza/bigbmeetup/core/curation"
	"github.com/hedsouza/bigbmeetup/core/instagram"
	"github.com/hedsouza/bigbmeetup/core/interfaces"
	"github.com/hedsouza/bigbmeetup/core/youtube"
	"github.com/hedsouza/bigbmeetup/infrastructure/cache/memory"
	"github.com/hedsouza/bigbmeetup/infrastructure/cache/redis"
	stdhttp "github.com/hedsouza/bigbmeetup/infrastructure/http/standard"
	logruslogger "github.com/hedsouza/bigbmeetup/infrastructure/logger/logrus"
	"github.com/hedsouza/bigbmeetup/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(logruslogger.Config{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	})
	logger.Info("Starting bigbmeetup API", map[string]interface{}{
		"port":       cfg.Port,
		"cache_type": cfg.CacheType,
		"channel":    cfg.YouTubeChannelHandle,
	})

	cache := buildCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(cfg.HTTPTimeout())

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	lists := curation.Lists{
		Blocked:  cfg.BlockedVideoIDs(),
		Featured: cfg.FeaturedVideoIDs(),
	}

	videoService := youtube.NewService(deps, youtube.Config{
		APIKey:   cfg.YouTubeAPIKey,
		CacheTTL: cfg.VideoCacheTTL(),
		Lists:    lists,
	})
	postsService := instagram.NewService(deps, instagram.Config{
		AccessToken: cfg.InstagramAccessToken,
		ProfileURL:  cfg.InstagramProfileURL,
		CacheTTL:    cfg.PostsCacheTTL(),
	})

	router := api.NewRouter(
		api.APIConfig{
			Logger:     logger,
			RateLimit:  cfg.RateLimitMax,
			RateWindow: cfg.RateLimitWindow(),
		},
		handlers.NewVideosHandler(videoService, lists, cfg.YouTubeChannelHandle, cfg.BaseURL(), logger),
		handlers.NewPostsHandler(postsService),
		handlers.NewHealthHandler(),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend, falling back to the
// in-memory cache when Redis is unreachable at startup.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	if cfg.CacheType == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Redis())
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.RedisAddress,
			})
			return redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.VideoCacheTTL(), 10*time.Minute)
}
