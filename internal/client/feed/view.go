package feed

import (
	"sort"
	"strings"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

// SortOrder selects the explore surface's ordering.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortPopular SortOrder = "popular"
)

// DeriveView computes the explore surface over the already-fetched posts:
// case-insensitive search over content and hashtags, an optional type
// filter ("all" or empty keeps everything), and the chosen ordering.
// Anything that is not oldest or popular sorts newest-first.
//
// The result is freshly derived on every call; the input is never mutated.
func DeriveView(posts []models.Post, query, postType string, order SortOrder) []models.Post {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if postType != "" && postType != "all" && p.PostType != postType {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch order {
		case SortPopular:
			return a.LikesCount > b.LikesCount
		case SortOldest:
			return a.CreatedTime().Before(b.CreatedTime())
		default:
			return b.CreatedTime().Before(a.CreatedTime())
		}
	})
	return result
}

func matchesQuery(p models.Post, q string) bool {
	if strings.Contains(strings.ToLower(p.PostContent), q) {
		return true
	}
	for _, tag := range p.Hashtags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
