// ABOUTME: Activity service assembles enriched feeds with whole-feed caching
// ABOUTME: Mirrors the upstream feed endpoints: user activity, friend activity, whoami

package activity

import (
	"context"
	"encoding/json"
	"time"

	"activity-viewer-api/core/domain"
	coreerrors "activity-viewer-api/core/errors"
	"activity-viewer-api/core/interfaces"
)

// Feed cache key prefixes, one per feed flavor.
const (
	userFeedKeyPrefix   = "useractivity:"
	friendFeedKeyPrefix = "friendactivity:"
)

// Enricher resolves per-entry metadata for a raw activity feed.
type Enricher interface {
	EnrichFeed(ctx context.Context, entries []domain.ActivityEntry) domain.EnrichedFeed
}

// Options configures the activity service.
type Options struct {
	// FeedTTL is how long a fully enriched feed stays cached. It is shorter
	// than the metadata TTL since the feed itself changes more often.
	FeedTTL time.Duration
}

// DefaultOptions returns the default activity options.
func DefaultOptions() Options {
	return Options{FeedTTL: 15 * time.Minute}
}

// Service serves enriched activity feeds. A fully enriched feed is cached as
// serialized JSON so repeat requests within the TTL skip both the upstream
// feed fetch and per-entry enrichment.
type Service struct {
	deps     interfaces.Dependencies
	upstream interfaces.UpstreamClient
	enricher Enricher
	opts     Options
}

// NewService creates a new activity service.
func NewService(deps interfaces.Dependencies, upstream interfaces.UpstreamClient, enricher Enricher, opts Options) *Service {
	if opts.FeedTTL <= 0 {
		opts.FeedTTL = DefaultOptions().FeedTTL
	}
	return &Service{
		deps:     deps,
		upstream: upstream,
		enricher: enricher,
		opts:     opts,
	}
}

// UserFeed returns the enriched activity feed for a username. An empty
// username resolves to the authenticated caller. Feed-level upstream failures
// are returned as-is; per-entry failures degrade to sentinels inside the feed.
func (s *Service) UserFeed(ctx context.Context, username string) (domain.EnrichedFeed, error) {
	if username == "" {
		resolved, err := s.Whoami(ctx)
		if err != nil {
			return nil, err
		}
		username = resolved
	}

	key := userFeedKeyPrefix + username
	if feed, ok := s.cachedFeed(ctx, key); ok {
		return feed, nil
	}

	entries, err := s.upstream.FetchActivityFeed(ctx, username)
	if err != nil {
		return nil, coreerrors.WrapError(err, "fetching activity feed")
	}

	feed := s.enricher.EnrichFeed(ctx, entries)
	s.cacheFeed(ctx, key, feed)
	return feed, nil
}

// FriendFeed returns the enriched friend activity feed for the authenticated
// caller.
func (s *Service) FriendFeed(ctx context.Context) (domain.EnrichedFeed, error) {
	username, err := s.Whoami(ctx)
	if err != nil {
		return nil, err
	}

	key := friendFeedKeyPrefix + username
	if feed, ok := s.cachedFeed(ctx, key); ok {
		return feed, nil
	}

	entries, err := s.upstream.FetchFriendActivityFeed(ctx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "fetching friend activity feed")
	}

	feed := s.enricher.EnrichFeed(ctx, entries)
	s.cacheFeed(ctx, key, feed)
	return feed, nil
}

// Whoami resolves the authenticated caller's username. The principal must
// already be attached to the context; when it does not carry a username the
// upstream profile for "default" is consulted.
func (s *Service) Whoami(ctx context.Context) (string, error) {
	principal, ok := domain.PrincipalFromContext(ctx)
	if !ok || principal.Token == "" {
		return "", &coreerrors.AuthError{Message: "no authenticated principal"}
	}
	if principal.Username != "" {
		return principal.Username, nil
	}

	profile, err := s.upstream.FetchUserMetadata(ctx, "default")
	if err != nil {
		return "", coreerrors.WrapError(err, "resolving username")
	}
	return profile.Username, nil
}

// cachedFeed loads a previously enriched feed. Any cache error is a miss.
func (s *Service) cachedFeed(ctx context.Context, key string) (domain.EnrichedFeed, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}
	var feed domain.EnrichedFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, false
	}
	return feed, true
}

// cacheFeed stores an enriched feed, ignoring cache errors.
func (s *Service) cacheFeed(ctx context.Context, key string, feed domain.EnrichedFeed) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.opts.FeedTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Debug("Feed cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
