// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, upstream API access, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache with a bounded entry count
// - cache/redis: Redis-based cache storing values as JSON documents
// - cache/sqlite: SQLite-backed persistent cache
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger backed by logrus
// - upstream/gdata: Client for the GData activity and metadata API
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10000)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Upstream Client
//
// The GData client resolves activity feeds and metadata, attaching the
// authenticated principal's token from the request context:
//
//	upstream := gdata.NewClient(gdata.Options{RequestsPerSecond: 10})
//	entries, err := upstream.FetchActivityFeed(ctx, "alice")
package infrastructure
