package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
	"github.com/pulsefeed/pulsefeed/internal/client/state"
)

// feedScreen shows the home feed, fetching the first page when nothing is
// loaded yet.
func (a *App) feedScreen(ctx context.Context) {
	st := a.feed.State()
	if len(st.Posts) == 0 {
		a.page = 1
		if err := a.feed.FetchPosts(ctx, state.FetchParams{Page: 1, Limit: a.config.PageLimit}); err != nil {
			fmt.Fprintln(a.out, a.feed.State().Err)
			return
		}
		st = a.feed.State()
	}

	a.renderPosts(st.Posts)
	a.printFooter(st)
}

// loadMore is the end-reached trigger: it only requests the next page when
// nothing is loading and the feed has more to give.
func (a *App) loadMore(ctx context.Context) {
	st := a.feed.State()
	if st.IsLoading || a.isFetchingMore || !st.HasMore {
		fmt.Fprintln(a.out, "Nothing more to load.")
		return
	}

	before := len(st.Posts)

	a.isFetchingMore = true
	a.page++
	err := a.feed.FetchPosts(ctx, state.FetchParams{Page: a.page, Limit: a.config.PageLimit})
	a.isFetchingMore = false

	if err != nil {
		// Keep the cursor on the last page that actually loaded, so the
		// next 'more' retries the same page instead of skipping it.
		a.page--
		fmt.Fprintln(a.out, a.feed.State().Err)
		return
	}

	st = a.feed.State()
	a.renderPosts(st.Posts[before:])
	a.printFooter(st)
}

// refreshFeed is pull-to-refresh: re-fetch the first page and reset the
// screen's page cursor to 1 whatever the outcome.
func (a *App) refreshFeed(ctx context.Context) {
	err := a.feed.Refresh(ctx, state.FetchParams{Limit: a.config.PageLimit})
	a.page = 1

	if err != nil {
		fmt.Fprintln(a.out, a.feed.State().Err)
		return
	}
	st := a.feed.State()
	a.renderPosts(st.Posts)
	a.printFooter(st)
}

func (a *App) renderPosts(posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet.")
		return
	}
	for _, p := range posts {
		a.renderPost(p)
	}
}

func (a *App) renderPost(p models.Post) {
	fmt.Fprintf(a.out, "%s\n%s\n", p.InfluencerName, p.PostContent)
	if p.MediaURL != "" {
		fmt.Fprintf(a.out, "[%s] %s\n", p.PostType, p.MediaURL)
	}
	fmt.Fprintf(a.out, "%s • %s • %d likes\n\n", strings.Join(p.Hashtags, " "), p.CreatedAt, p.LikesCount)
}

func (a *App) printFooter(st state.FeedState) {
	if st.HasMore {
		fmt.Fprintf(a.out, "-- page %d, type 'more' for the next one --\n", st.Page)
	} else {
		fmt.Fprintln(a.out, "-- you're all caught up --")
	}
}
