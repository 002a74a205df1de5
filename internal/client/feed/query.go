// Package feed holds the pure collection pipeline behind the feed: the
// filter/sort/slice applied to the wholesale-fetched post collection, and
// the explore surface's local view derivation. Nothing here has state or
// side effects.
package feed

import (
	"sort"
	"strconv"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

// SortKeyCreatedAt is the default sort key: creation time, newest first.
const SortKeyCreatedAt = "created_at"

// Filters selects posts by field/value pairs. A post is retained when, for
// every pair, the named field equals the value exactly — except for
// sequence-valued fields (hashtags), which match when the sequence contains
// the value. Empty values are no-ops; a field the Post does not have
// matches nothing.
type Filters map[string]string

// Apply runs the full pipeline over the collection: filter, stable sort
// descending by sortKey, then slice out the requested page. It returns the
// page slice and the filtered collection's total length.
func Apply(posts []models.Post, filters Filters, sortKey string, page, limit int) ([]models.Post, int) {
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if matches(p, filters) {
			filtered = append(filtered, p)
		}
	}

	sortPosts(filtered, sortKey)

	total := len(filtered)
	start := (page - 1) * limit
	if start < 0 || start >= total {
		return []models.Post{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

func matches(p models.Post, filters Filters) bool {
	for field, want := range filters {
		if want == "" {
			continue
		}
		switch field {
		case "hashtags":
			if !p.HasHashtag(want) {
				return false
			}
		case "id":
			if p.ID != want {
				return false
			}
		case "influencer_id":
			if p.InfluencerID != want {
				return false
			}
		case "influencer_name":
			if p.InfluencerName != want {
				return false
			}
		case "post_type":
			if p.PostType != want {
				return false
			}
		case "post_content":
			if p.PostContent != want {
				return false
			}
		case "influencer_pic":
			if p.InfluencerPic != want {
				return false
			}
		case "media_url":
			if p.MediaURL != want {
				return false
			}
		case "created_at":
			if p.CreatedAt != want {
				return false
			}
		case "likes_count":
			if strconv.Itoa(p.LikesCount) != want {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// sortPosts orders posts descending by the sortKey's value coerced to a
// timestamp. Only created_at holds a date-like value; every other key
// coerces to 0, which leaves the arrival order intact (the sort is stable).
func sortPosts(posts []models.Post, sortKey string) {
	sort.SliceStable(posts, func(i, j int) bool {
		return sortValue(posts[i], sortKey) > sortValue(posts[j], sortKey)
	})
}

func sortValue(p models.Post, key string) int64 {
	if key != SortKeyCreatedAt {
		return 0
	}
	t := p.CreatedTime()
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
