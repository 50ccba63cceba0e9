// Package api provides the HTTP API layer for the bigbmeetup site backend.
// It exposes the normalized YouTube and Instagram content over plain JSON
// endpoints consumed by the public site.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: chi router construction and middleware wiring
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET /api/youtube/videos            one page of channel videos
//	GET /api/youtube/videos/{videoId}  a single video
//	GET /api/instagram/posts           recent posts (live or fallback)
//	GET /health                        liveness check
//
// Successful responses carry Cache-Control headers sized for each content
// type so a CDN can absorb most of the traffic. Posts served from the
// static fallback are marked with an X-Content-Source header.
//
// # Middleware
//
// The router applies, in order: CORS, real IP resolution, panic recovery,
// response compression, request logging with unique request IDs, and
// per-IP rate limiting.
//
// # Error Handling
//
// Errors use a consistent JSON shape:
//
//	{
//	    "error": "Failed to fetch videos",
//	    "details": "upstream API error from youtube: 503 - unavailable"
//	}
//
// Domain errors from the core services are mapped to HTTP status codes in
// the handlers; the posts endpoint never errors and degrades to fallback
// content instead.
package api
