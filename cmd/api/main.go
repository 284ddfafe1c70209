// ABOUTME: Main entry point for the activity viewer API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activity-viewer-api/api"
	"activity-viewer-api/api/handlers"
	"activity-viewer-api/core/activity"
	"activity-viewer-api/core/enrichment"
	"activity-viewer-api/core/interfaces"
	"activity-viewer-api/core/services"
	"activity-viewer-api/infrastructure/cache/memory"
	"activity-viewer-api/infrastructure/cache/redis"
	"activity-viewer-api/infrastructure/cache/sqlite"
	stdhttp "activity-viewer-api/infrastructure/http/standard"
	logruslogger "activity-viewer-api/infrastructure/logger/logrus"
	"activity-viewer-api/infrastructure/upstream/gdata"
	"activity-viewer-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(logruslogger.Options{
		Level:      cfg.Log.Level,
		JSONFormat: cfg.Log.JSONFormat,
	})
	logger.Info("Starting activity viewer API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"upstream":   cfg.Upstream.BaseURL,
	})

	cache, cleanup := buildCache(cfg, logger)
	if cleanup != nil {
		defer cleanup()
	}

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Upstream.Timeout)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	upstream := gdata.NewClient(gdata.Options{
		BaseURL:           cfg.Upstream.BaseURL,
		Timeout:           cfg.Upstream.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
	})

	enricher := enrichment.NewService(deps, upstream, enrichment.Options{
		MetadataTTL: cfg.TTL.Metadata,
	})
	enricher.SetColorExtractor(services.NewThumbnailColorService(deps))

	activityService := activity.NewService(deps, upstream, enricher, activity.Options{
		FeedTTL: cfg.TTL.Feed,
	})

	activityHandler := handlers.NewActivityHandler(activityService, logger)
	server := api.NewServer(api.ServerConfig{
		Logger:            logger,
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
	}, activityHandler)
	defer server.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.Handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
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
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend, falling back to memory
// when a backend cannot be reached. The returned cleanup closes backends
// that hold resources.
func buildCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, closerFunc(redisCache, logger)
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, closerFunc(sqliteCache, logger)
	}

	logger.Info("Using memory cache", map[string]interface{}{
		"max_entries": cfg.Cache.Memory.MaxEntries,
	})
	return memory.NewMemoryCache(cfg.Cache.Memory.MaxEntries), nil
}

func closerFunc(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Cache close failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
