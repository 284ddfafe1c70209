// ABOUTME: EnrichedFeed domain model pairs activity entries with resolved metadata
// ABOUTME: Implements the NOT_AVAILABLE sentinel encoding for failed lookups

package domain

import (
	"encoding/json"
	"time"
)

// Sentinel values surfaced to clients in place of real data.
const (
	// SentinelNotAvailable marks a recoverable per-entry lookup failure.
	SentinelNotAvailable = "NOT_AVAILABLE"

	// SentinelServerError marks a feed-level upstream failure; the whole
	// response degrades to this value rather than a partial feed.
	SentinelServerError = "SERVER_ERROR"
)

// VideoInfo is the resolved video metadata of an enriched entry. When the
// upstream lookup failed it carries no metadata and serializes as the
// NOT_AVAILABLE sentinel string instead of an object.
type VideoInfo struct {
	Metadata    *VideoMetadata
	Unavailable bool
}

// MarshalJSON encodes the metadata object, or the sentinel string on failure.
func (v VideoInfo) MarshalJSON() ([]byte, error) {
	if v.Unavailable || v.Metadata == nil {
		return json.Marshal(SentinelNotAvailable)
	}
	return json.Marshal(v.Metadata)
}

// UnmarshalJSON decodes either a metadata object or the sentinel string.
func (v *VideoInfo) UnmarshalJSON(data []byte) error {
	var sentinel string
	if err := json.Unmarshal(data, &sentinel); err == nil {
		v.Metadata = nil
		v.Unavailable = sentinel == SentinelNotAvailable
		return nil
	}
	var meta VideoMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}
	v.Metadata = &meta
	v.Unavailable = false
	return nil
}

// UserInfo is the resolved user profile of an enriched entry, with the same
// sentinel encoding as VideoInfo.
type UserInfo struct {
	Metadata    *UserMetadata
	Unavailable bool
}

// MarshalJSON encodes the metadata object, or the sentinel string on failure.
func (u UserInfo) MarshalJSON() ([]byte, error) {
	if u.Unavailable || u.Metadata == nil {
		return json.Marshal(SentinelNotAvailable)
	}
	return json.Marshal(u.Metadata)
}

// UnmarshalJSON decodes either a metadata object or the sentinel string.
func (u *UserInfo) UnmarshalJSON(data []byte) error {
	var sentinel string
	if err := json.Unmarshal(data, &sentinel); err == nil {
		u.Metadata = nil
		u.Unavailable = sentinel == SentinelNotAvailable
		return nil
	}
	var meta UserMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}
	u.Metadata = &meta
	u.Unavailable = false
	return nil
}

// EnrichedEntry is one activity entry paired with its resolved metadata.
// The JSON shape is flat and directly serializable.
type EnrichedEntry struct {
	Author       string       `json:"author"`
	ActivityType ActivityType `json:"activity_type"`
	Updated      time.Time    `json:"updated"`

	// Rating is only present for video_rated entries
	Rating int `json:"rating,omitempty"`

	// VideoInfo is present for video activities
	VideoInfo *VideoInfo `json:"video_info,omitempty"`

	// Username and UserInfo are present for user activities
	Username string    `json:"username,omitempty"`
	UserInfo *UserInfo `json:"user_info,omitempty"`
}

// EnrichedFeed is an ordered sequence of enriched entries. It serializes to a
// plain JSON array and preserves the order of the source feed.
type EnrichedFeed []EnrichedEntry
