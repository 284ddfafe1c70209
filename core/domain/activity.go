// ABOUTME: Activity domain model represents a single event in a user activity feed
// ABOUTME: Provides type classification helpers used by the enrichment pipeline

package domain

import "time"

// ActivityType identifies the kind of event an activity entry describes.
type ActivityType string

// Activity types exposed by the upstream activity feed.
const (
	ActivityVideoRated       ActivityType = "video_rated"
	ActivityVideoShared      ActivityType = "video_shared"
	ActivityVideoFavorited   ActivityType = "video_favorited"
	ActivityVideoCommented   ActivityType = "video_commented"
	ActivityVideoUploaded    ActivityType = "video_uploaded"
	ActivityFriendAdded      ActivityType = "friend_added"
	ActivitySubscriptionAdded ActivityType = "user_subscription_added"
)

// videoActivities is the set of activity types that reference a video.
var videoActivities = map[ActivityType]bool{
	ActivityVideoRated:     true,
	ActivityVideoShared:    true,
	ActivityVideoFavorited: true,
	ActivityVideoCommented: true,
	ActivityVideoUploaded:  true,
}

// userActivities is the set of activity types that reference another user.
var userActivities = map[ActivityType]bool{
	ActivityFriendAdded:       true,
	ActivitySubscriptionAdded: true,
}

// IsValid reports whether t is one of the known activity types.
func (t ActivityType) IsValid() bool {
	return videoActivities[t] || userActivities[t]
}

// ActivityEntry represents one event parsed from the upstream activity feed.
// Entries are immutable once parsed.
type ActivityEntry struct {
	// Author is the user who performed the activity
	Author string

	// Type classifies the activity
	Type ActivityType

	// Updated is when the activity occurred
	Updated time.Time

	// VideoID is set for video-related activity types
	VideoID string

	// Username is set for user-related activity types
	Username string

	// Rating is the rating value given, only set for video_rated entries
	Rating int
}

// IsVideoActivity reports whether the entry references a video.
func (e *ActivityEntry) IsVideoActivity() bool {
	return videoActivities[e.Type]
}

// IsUserActivity reports whether the entry references another user.
func (e *ActivityEntry) IsUserActivity() bool {
	return userActivities[e.Type]
}

// LookupKey returns the metadata lookup key for the entry: the video id for
// video activities, the username for user activities, or "" when the entry
// needs no lookup.
func (e *ActivityEntry) LookupKey() string {
	switch {
	case e.IsVideoActivity():
		return e.VideoID
	case e.IsUserActivity():
		return e.Username
	default:
		return ""
	}
}
