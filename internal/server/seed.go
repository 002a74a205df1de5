package server

import (
	"fmt"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

var seedInfluencers = []struct {
	id   string
	name string
	pic  string
	tags []string
}{
	{"inf-001", "ava.codes", "https://cdn.pulsefeed.dev/pics/ava.png", []string{"#golang", "#dev"}},
	{"inf-002", "trailmix.tom", "https://cdn.pulsefeed.dev/pics/tom.png", []string{"#hiking", "#outdoors"}},
	{"inf-003", "lena.lifts", "https://cdn.pulsefeed.dev/pics/lena.png", []string{"#fitness"}},
	{"inf-004", "pixel.pete", "https://cdn.pulsefeed.dev/pics/pete.png", []string{"#art", "#pixel"}},
}

// SeedDemoFeed fills the store with a deterministic demo collection: n
// posts with descending timestamps, rotating influencers and post types.
// Deterministic ids keep pagination walks reproducible between runs.
func SeedDemoFeed(store *Store, n int) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	types := []string{models.PostTypeText, models.PostTypeImage, models.PostTypeVideo}

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		inf := seedInfluencers[i%len(seedInfluencers)]
		postType := types[i%len(types)]

		p := models.Post{
			ID:             fmt.Sprintf("post-%04d", i+1),
			InfluencerID:   inf.id,
			InfluencerName: inf.name,
			InfluencerPic:  inf.pic,
			PostContent:    fmt.Sprintf("Update #%d from %s", i+1, inf.name),
			PostType:       postType,
			CreatedAt:      base.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
			Hashtags:       inf.tags,
			LikesCount:     (n - i) * 7 % 97,
		}
		if postType != models.PostTypeText {
			p.MediaURL = fmt.Sprintf("https://cdn.pulsefeed.dev/media/%s.%s", p.ID, mediaExt(postType))
		}
		posts = append(posts, p)
	}
	store.AddPosts(posts...)
}

func mediaExt(postType string) string {
	if postType == models.PostTypeVideo {
		return "mp4"
	}
	return "jpg"
}
