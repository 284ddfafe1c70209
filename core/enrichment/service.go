// ABOUTME: Enrichment service resolves per-entry metadata for activity feeds
// ABOUTME: Read-through TTL cache over the upstream API, failures become sentinels

package enrichment

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"activity-viewer-api/core/domain"
	"activity-viewer-api/core/interfaces"
)

const (
	videoKeyPrefix = "video:"
	userKeyPrefix  = "user:"
)

// ColorExtractor extracts a prominent color from an image URL.
type ColorExtractor interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

// Options configures the enrichment service.
type Options struct {
	// MetadataTTL is how long fetched metadata stays cached
	MetadataTTL time.Duration

	// MaxConcurrency bounds the number of parallel metadata lookups
	MaxConcurrency int
}

// DefaultOptions returns the default enrichment options.
func DefaultOptions() Options {
	return Options{
		MetadataTTL:    24 * time.Hour,
		MaxConcurrency: 4,
	}
}

// Service enriches raw activity entries with video or user metadata. Lookups
// go through the cache first and fall back to the upstream client on miss.
// Lookup failures are converted to the unavailable sentinel and never cached,
// so the next enrichment attempt retries.
type Service struct {
	deps     interfaces.Dependencies
	upstream interfaces.UpstreamClient
	opts     Options
	colorSvc ColorExtractor
}

// NewService creates a new enrichment service.
func NewService(deps interfaces.Dependencies, upstream interfaces.UpstreamClient, opts Options) *Service {
	if opts.MetadataTTL <= 0 {
		opts.MetadataTTL = DefaultOptions().MetadataTTL
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultOptions().MaxConcurrency
	}
	return &Service{
		deps:     deps,
		upstream: upstream,
		opts:     opts,
	}
}

// SetColorExtractor enables thumbnail accent color extraction for freshly
// fetched video metadata.
func (s *Service) SetColorExtractor(svc ColorExtractor) {
	s.colorSvc = svc
}

// EnrichFeed resolves metadata for every entry of a raw activity feed.
// Each entry is enriched independently; a failed lookup yields the sentinel
// for that entry only. The result has exactly one element per input entry,
// in input order.
func (s *Service) EnrichFeed(ctx context.Context, entries []domain.ActivityEntry) domain.EnrichedFeed {
	feed := make(domain.EnrichedFeed, len(entries))

	sem := make(chan struct{}, s.opts.MaxConcurrency)
	var wg sync.WaitGroup

	for i := range entries {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			feed[i] = s.enrichEntry(ctx, entries[i])
		}(i)
	}

	wg.Wait()
	return feed
}

// enrichEntry resolves the metadata for a single entry.
func (s *Service) enrichEntry(ctx context.Context, entry domain.ActivityEntry) domain.EnrichedEntry {
	enriched := domain.EnrichedEntry{
		Author:       entry.Author,
		ActivityType: entry.Type,
		Updated:      entry.Updated,
	}

	switch {
	case entry.IsVideoActivity():
		if entry.Type == domain.ActivityVideoRated {
			enriched.Rating = entry.Rating
		}
		enriched.VideoInfo = s.videoInfo(ctx, entry.VideoID)
	case entry.IsUserActivity():
		enriched.Username = entry.Username
		enriched.UserInfo = s.userInfo(ctx, entry.Username)
	}

	return enriched
}

// videoInfo resolves video metadata through the cache.
func (s *Service) videoInfo(ctx context.Context, videoID string) *domain.VideoInfo {
	if videoID == "" {
		return &domain.VideoInfo{Unavailable: true}
	}

	var cached domain.VideoMetadata
	if s.cacheGet(ctx, videoKeyPrefix+videoID, &cached) {
		return &domain.VideoInfo{Metadata: &cached}
	}

	meta, err := s.upstream.FetchVideoMetadata(ctx, videoID)
	if err != nil {
		s.logDebug("Video metadata lookup failed", map[string]interface{}{
			"video_id": videoID,
			"error":    err.Error(),
		})
		return &domain.VideoInfo{Unavailable: true}
	}

	if s.colorSvc != nil && meta.ThumbnailURL != "" {
		if color, err := s.colorSvc.ExtractColor(ctx, meta.ThumbnailURL); err == nil {
			meta.AccentColor = color
		}
	}

	s.cacheSet(ctx, videoKeyPrefix+videoID, meta)
	return &domain.VideoInfo{Metadata: meta}
}

// userInfo resolves user profile metadata through the cache.
func (s *Service) userInfo(ctx context.Context, username string) *domain.UserInfo {
	if username == "" {
		return &domain.UserInfo{Unavailable: true}
	}

	var cached domain.UserMetadata
	if s.cacheGet(ctx, userKeyPrefix+username, &cached) {
		return &domain.UserInfo{Metadata: &cached}
	}

	meta, err := s.upstream.FetchUserMetadata(ctx, username)
	if err != nil {
		s.logDebug("User metadata lookup failed", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return &domain.UserInfo{Unavailable: true}
	}

	s.cacheSet(ctx, userKeyPrefix+username, meta)
	return &domain.UserInfo{Metadata: meta}
}

// cacheGet reads and decodes a cached value. Any cache error is a miss.
func (s *Service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.deps.Cache == nil {
		return false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logDebug("Discarding undecodable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// cacheSet writes a value through to the cache. Cache errors are ignored;
// the fetched value is still returned to the caller.
func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.opts.MetadataTTL); err != nil {
		s.logDebug("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
