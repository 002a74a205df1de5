package models

import "time"

// Post types understood by the feed.
const (
	PostTypeText  = "text"
	PostTypeImage = "image"
	PostTypeVideo = "video"
)

// Post is a single feed item. Posts are immutable from the client's point
// of view: the collection is fetched wholesale and never mutated locally.
type Post struct {
	ID             string   `json:"id"`
	InfluencerID   string   `json:"influencer_id"`
	InfluencerName string   `json:"influencer_name"`
	InfluencerPic  string   `json:"influencer_pic,omitempty"`
	PostContent    string   `json:"post_content"`
	PostType       string   `json:"post_type"`
	MediaURL       string   `json:"media_url,omitempty"`
	CreatedAt      string   `json:"created_at"`
	Hashtags       []string `json:"hashtags"`
	LikesCount     int      `json:"likes_count"`
}

// CreatedTime coerces the created_at value into a time.Time. The resource
// store holds whatever was written into it, so values that are not RFC3339
// date-like come back as the zero time rather than an error.
func (p Post) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasHashtag reports whether the post's hashtag sequence contains tag.
func (p Post) HasHashtag(tag string) bool {
	for _, h := range p.Hashtags {
		if h == tag {
			return true
		}
	}
	return false
}
