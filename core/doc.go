// Package core contains the business logic for the activity viewer API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ActivityEntry, VideoMetadata, EnrichedFeed, etc.)
// - activity: Activity feed assembly with whole-feed caching
// - enrichment: Per-entry metadata enrichment with read-through caching
// - services: Supporting services such as thumbnail accent color extraction
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, upstream, logger)
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
//	    "activity-viewer-api/core/activity"
//	    "activity-viewer-api/core/enrichment"
//	    "activity-viewer-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	enricher := enrichment.NewService(deps, upstream, enrichment.DefaultOptions())
//	feeds := activity.NewService(deps, upstream, enricher, activity.DefaultOptions())
//
//	// Serve an enriched feed
//	feed, err := feeds.UserFeed(ctx, "alice")
package core
