// ABOUTME: HTTP server assembly with middleware chain and CORS
// ABOUTME: Wires handlers, auth, logging, and rate limiting onto a ServeMux

package api

import (
	"net/http"

	"activity-viewer-api/api/handlers"
	"activity-viewer-api/api/middleware"
	"activity-viewer-api/core/interfaces"

	"github.com/rs/cors"
)

// ServerConfig configures the API server assembly
type ServerConfig struct {
	// Logger receives request logs
	Logger interfaces.Logger

	// RequestsPerSecond limits requests per client IP; 0 disables limiting
	RequestsPerSecond float64

	// AllowedOrigins restricts CORS; empty allows all origins
	AllowedOrigins []string
}

// Server bundles the assembled handler with its rate limiter so callers can
// stop the limiter's cleanup goroutine on shutdown.
type Server struct {
	Handler http.Handler

	limiter *middleware.RateLimiter
}

// NewServer assembles the full HTTP handler: routes wrapped in auth, request
// logging, rate limiting, and CORS.
func NewServer(cfg ServerConfig, activityHandler *handlers.ActivityHandler) *Server {
	mux := http.NewServeMux()
	activityHandler.RegisterRoutes(mux)

	var limiter *middleware.RateLimiter
	if cfg.RequestsPerSecond > 0 {
		limiter = middleware.NewRateLimiter(cfg.RequestsPerSecond)
	}

	var handler http.Handler = mux
	handler = middleware.AuthMiddleware()(handler)
	handler = middleware.RateLimitMiddleware(limiter)(handler)
	handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Upstream-Username"},
	}).Handler(handler)

	return &Server{Handler: handler, limiter: limiter}
}

// Close stops background goroutines owned by the server assembly.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
