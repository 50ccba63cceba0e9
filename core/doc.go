// Package core contains the business logic for the bigbmeetup backend.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (VideoContent, SocialPost)
// - youtube: YouTube Data API fetching and normalization
// - instagram: Instagram Graph API fetching with fallback content
// - curation: Block-list and feature-list policy over videos
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/hedsouza/bigbmeetup/core/interfaces"
//	    "github.com/hedsouza/bigbmeetup/core/youtube"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := youtube.NewService(deps, youtube.Config{APIKey: key})
//	channelID, err := svc.ResolveChannelID(ctx, "@bigbmeetup")
//	page, err := svc.ListChannelVideos(ctx, channelID, 12, "")
package core
