// ABOUTME: VideoMetadata domain model holds the per-video details fetched lazily
// ABOUTME: Field set mirrors the upstream video entry (title, uploader, counts, urls)

package domain

// VideoMetadata holds the metadata for a single video, keyed by its id.
// Instances are fetched lazily from the upstream API and cached with a TTL.
type VideoMetadata struct {
	// ID is the upstream video id
	ID string `json:"id"`

	// Title is the video title
	Title string `json:"title"`

	// Uploader is the username of the uploading channel
	Uploader string `json:"uploader,omitempty"`

	// ViewCount is the total number of views
	ViewCount int64 `json:"view_count"`

	// Rating summarizes the video rating, nil when the video has none
	Rating *VideoRating `json:"rating,omitempty"`

	// ThumbnailURL is the default thumbnail image
	ThumbnailURL string `json:"thumbnail,omitempty"`

	// PlayerURL is the embeddable player URL
	PlayerURL string `json:"player,omitempty"`

	// AccentColor is the prominent thumbnail color, when extraction ran
	AccentColor *RGBColor `json:"accent_color,omitempty"`
}

// VideoRating summarizes the rating info of a video.
type VideoRating struct {
	Min       int     `json:"min"`
	Max       int     `json:"max"`
	NumRaters int     `json:"num_raters"`
	Average   float64 `json:"average"`
}

// RGBColor represents an RGB color value.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
