package cli

import (
	"context"
	"fmt"

	"github.com/pulsefeed/pulsefeed/internal/client/feed"
	"github.com/pulsefeed/pulsefeed/internal/client/state"
)

// exploreScreen is the search surface: a pure, re-derived view over the
// posts the feed machine already holds. Nothing here talks to the network
// except the initial fill when the feed is empty.
func (a *App) exploreScreen(ctx context.Context) {
	st := a.feed.State()
	if len(st.Posts) == 0 {
		a.feed.FetchPosts(ctx, state.FetchParams{Page: 1, Limit: a.config.PageLimit})
		st = a.feed.State()
		if st.Err != "" {
			fmt.Fprintln(a.out, st.Err)
			return
		}
	}

	query, err := getSimpleText(a.reader, "Search (empty for all)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	postType, err := getSimpleText(a.reader, "Type filter: all/text/image/video", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	order, err := getSimpleText(a.reader, "Sort: newest/oldest/popular", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	view := feed.DeriveView(st.Posts, query, postType, feed.SortOrder(order))
	if len(view) == 0 {
		fmt.Fprintln(a.out, "No posts match.")
		return
	}
	a.renderPosts(view)
}
