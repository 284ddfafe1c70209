// ABOUTME: Atom activity feed parsing for the GData events feed
// ABOUTME: Maps category terms and yt: extensions onto typed ActivityEntry values

package gdata

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"activity-viewer-api/core/domain"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// extension namespace prefix used by the upstream feed
const ytNamespace = "yt"

// parseActivityFeed decodes an Atom activity feed into typed entries.
// Entries whose category term is not a known activity type are skipped; the
// upstream occasionally introduces new event kinds and they carry nothing we
// can enrich.
func parseActivityFeed(r io.Reader) ([]domain.ActivityEntry, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing activity feed: %w", err)
	}

	entries := make([]domain.ActivityEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entry, ok := parseActivityEntry(item)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseActivityEntry maps a single feed item onto an ActivityEntry.
func parseActivityEntry(item *gofeed.Item) (domain.ActivityEntry, bool) {
	activityType, ok := activityTypeOf(item)
	if !ok {
		return domain.ActivityEntry{}, false
	}

	entry := domain.ActivityEntry{
		Author:  authorOf(item),
		Type:    activityType,
		Updated: updatedOf(item),
	}

	switch {
	case entry.IsVideoActivity():
		entry.VideoID = ytExtensionValue(item, "videoid")
		if activityType == domain.ActivityVideoRated {
			entry.Rating = ytRating(item)
		}
	case entry.IsUserActivity():
		entry.Username = ytExtensionValue(item, "username")
	}

	return entry, true
}

// activityTypeOf finds the first category term that names a known activity
// type.
func activityTypeOf(item *gofeed.Item) (domain.ActivityType, bool) {
	for _, category := range item.Categories {
		typ := domain.ActivityType(category)
		if typ.IsValid() {
			return typ, true
		}
	}
	return "", false
}

// authorOf returns the entry author, tolerating both author encodings.
func authorOf(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return item.Authors[0].Name
	}
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

// updatedOf prefers the updated timestamp, falling back to published.
func updatedOf(item *gofeed.Item) time.Time {
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	return time.Time{}
}

// ytExtensionValue returns the text content of a yt: extension element.
func ytExtensionValue(item *gofeed.Item, name string) string {
	exts := ytExtensions(item, name)
	if len(exts) == 0 {
		return ""
	}
	return exts[0].Value
}

// ytRating reads the rating value attribute of the yt:rating element.
func ytRating(item *gofeed.Item) int {
	exts := ytExtensions(item, "rating")
	if len(exts) == 0 {
		return 0
	}
	raw := exts[0].Attrs["value"]
	if raw == "" {
		raw = exts[0].Value
	}
	rating, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return rating
}

func ytExtensions(item *gofeed.Item, name string) []ext.Extension {
	ns, ok := item.Extensions[ytNamespace]
	if !ok {
		return nil
	}
	return ns[name]
}
