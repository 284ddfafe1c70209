// ABOUTME: UserMetadata domain model holds the profile details for a username
// ABOUTME: Field set mirrors the upstream user profile entry, empty fields omitted

package domain

// UserMetadata holds the profile metadata for a single user, keyed by username.
// Instances are fetched lazily from the upstream API and cached with a TTL.
type UserMetadata struct {
	// Username is the upstream account name
	Username string `json:"username"`

	AboutMe      string `json:"about_me,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Location     string `json:"location,omitempty"`

	// MemberSince is the account creation date as reported upstream
	MemberSince string `json:"member_since,omitempty"`

	// Feed counts
	NumFavorites     int `json:"num_favorites,omitempty"`
	NumContacts      int `json:"num_contacts,omitempty"`
	NumSubscriptions int `json:"num_subscriptions,omitempty"`
	NumUploads       int `json:"num_uploads,omitempty"`

	// Channel statistics
	ChannelViews int64 `json:"channel_views,omitempty"`
	Subscribers  int64 `json:"subscribers,omitempty"`
}
