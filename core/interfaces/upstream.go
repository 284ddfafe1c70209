// ABOUTME: UpstreamClient is the contract for the external activity/metadata API
// ABOUTME: Auth, protocol framing and retries are the implementation's concern

package interfaces

import (
	"context"

	"activity-viewer-api/core/domain"
)

// UpstreamClient wraps calls to the external feed and metadata API.
// Implementations read the request principal from the context for
// authenticated calls.
type UpstreamClient interface {
	// FetchActivityFeed retrieves the activity feed for a username.
	// An empty username resolves to the authenticated caller.
	FetchActivityFeed(ctx context.Context, username string) ([]domain.ActivityEntry, error)

	// FetchFriendActivityFeed retrieves the friend activity feed for the
	// authenticated caller.
	FetchFriendActivityFeed(ctx context.Context) ([]domain.ActivityEntry, error)

	// FetchVideoMetadata retrieves metadata for a single video.
	FetchVideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error)

	// FetchUserMetadata retrieves the profile for a username.
	// The special username "default" resolves to the authenticated caller.
	FetchUserMetadata(ctx context.Context, username string) (*domain.UserMetadata, error)
}
