package state

import (
	"context"
	"sync"

	"github.com/pulsefeed/pulsefeed/internal/client/api"
	"github.com/pulsefeed/pulsefeed/internal/client/feed"
	"github.com/pulsefeed/pulsefeed/internal/client/models"
	"github.com/pulsefeed/pulsefeed/internal/logging"
)

const msgFetchFailed = "Failed to load posts."

// DefaultPageLimit is the page size used when a fetch does not specify one.
const DefaultPageLimit = 10

// FeedState is the feed slice of application state. Posts is unique by id;
// HasMore is true exactly while Posts is shorter than the filtered
// collection's last observed total.
type FeedState struct {
	Posts     []models.Post
	IsLoading bool
	Err       string
	Page      int
	HasMore   bool
}

func initialFeedState() FeedState {
	return FeedState{Page: 1, HasMore: true}
}

// Pure transitions.

func reduceFetchPending(s FeedState, page int) FeedState {
	// Only a first-page fetch blocks the list; load-more keeps the
	// already-rendered posts interactive and tracks its own flag in the UI.
	if page == 1 {
		s.IsLoading = true
		s.Err = ""
	}
	return s
}

func reduceFetchFulfilled(s FeedState, page int, fresh []models.Post, totalCount int) FeedState {
	if page == 1 {
		s.Posts = fresh
	} else {
		seen := make(map[string]struct{}, len(s.Posts))
		for _, p := range s.Posts {
			seen[p.ID] = struct{}{}
		}
		next := make([]models.Post, len(s.Posts), len(s.Posts)+len(fresh))
		copy(next, s.Posts)
		for _, p := range fresh {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			next = append(next, p)
		}
		s.Posts = next
	}

	s.Page = page
	s.IsLoading = false
	s.Err = ""
	s.HasMore = len(s.Posts) < totalCount
	return s
}

func reduceFetchRejected(s FeedState, msg string) FeedState {
	s.IsLoading = false
	s.Err = msg
	return s
}

// FetchParams describes one fetch cycle. Zero values fall back to page 1,
// DefaultPageLimit and the created_at sort key.
type FetchParams struct {
	Page    int
	Limit   int
	Filters feed.Filters
	SortKey string
}

// Feed owns the fetched post collection and its pagination lifecycle.
// The backend returns the whole collection on every call; filtering,
// sorting and slicing happen here on the client.
//
// Overlapping fetches are not fenced: when two resolve out of order the
// last one wins the Page/HasMore fields. Callers serialize via the
// end-reached preconditions, which makes the race unreachable in practice.
type Feed struct {
	mu    sync.Mutex
	state FeedState

	api api.Client
	log logging.Logger
}

func NewFeed(client api.Client, log logging.Logger) *Feed {
	return &Feed{state: initialFeedState(), api: client, log: log}
}

// State returns a snapshot of the current feed state. The posts slice is
// never mutated in place by the machine, so sharing it is safe.
func (f *Feed) State() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Feed) setState(fn func(FeedState) FeedState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = fn(f.state)
}

// FetchPosts retrieves the entire collection, applies the client-side
// pipeline and transitions the state: replace on page 1, de-duplicated
// append on later pages. A failure records the generic message and leaves
// the posts untouched. Safe to call redundantly for the same page.
func (f *Feed) FetchPosts(ctx context.Context, p FetchParams) error {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.SortKey == "" {
		p.SortKey = feed.SortKeyCreatedAt
	}

	f.setState(func(s FeedState) FeedState { return reduceFetchPending(s, p.Page) })

	all, err := f.api.ListPosts(ctx)
	if err != nil {
		f.log.Error(ctx, "feed fetch failed", "page", p.Page, "error", err)
		f.setState(func(s FeedState) FeedState { return reduceFetchRejected(s, msgFetchFailed) })
		return err
	}

	pageSlice, totalCount := feed.Apply(all, p.Filters, p.SortKey, p.Page, p.Limit)
	f.setState(func(s FeedState) FeedState { return reduceFetchFulfilled(s, p.Page, pageSlice, totalCount) })
	return nil
}

// Refresh re-fetches the first page, replacing the collection. The
// caller's page cursor resets to 1 regardless of the outcome.
func (f *Feed) Refresh(ctx context.Context, p FetchParams) error {
	p.Page = 1
	return f.FetchPosts(ctx, p)
}

// Reset returns the feed to its initial empty state.
func (f *Feed) Reset() {
	f.setState(func(FeedState) FeedState { return initialFeedState() })
}
