package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

// composeScreen mirrors the app's composer: it assembles a post preview
// locally. Publishing goes through the influencer pipeline, not this
// client — the feed collection is read-only here.
func (a *App) composeScreen(ctx context.Context) {
	content, err := GetMultiline(a.reader, "What's on your mind?", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if content == "" {
		fmt.Fprintln(a.out, "Nothing to post.")
		return
	}

	postType, err := getSimpleText(a.reader, "Type: text/image/video", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if postType == "" {
		postType = models.PostTypeText
	}

	var mediaURL string
	if postType == models.PostTypeImage || postType == models.PostTypeVideo {
		if mediaURL, err = getSimpleText(a.reader, "Media URL", a.out); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
	}

	tagsLine, err := getSimpleText(a.reader, "Hashtags (space-separated)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	user := a.auth.State().User
	preview := models.Post{
		ID:             "draft",
		InfluencerID:   user.ID,
		InfluencerName: user.Username,
		InfluencerPic:  user.ImageURL,
		PostContent:    content,
		PostType:       postType,
		MediaURL:       mediaURL,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Hashtags:       strings.Fields(tagsLine),
	}

	fmt.Fprintln(a.out, "Preview:")
	a.renderPost(preview)
	fmt.Fprintln(a.out, "Publishing is not available in this build.")
}
