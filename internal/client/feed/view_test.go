package feed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

func explorePosts() []models.Post {
	return []models.Post{
		{ID: "a", PostContent: "Morning RUN in the hills", PostType: models.PostTypeImage, CreatedAt: "2025-06-03T09:00:00Z", Hashtags: []string{"#Outdoors"}, LikesCount: 5},
		{ID: "b", PostContent: "New gym routine", PostType: models.PostTypeVideo, CreatedAt: "2025-06-02T09:00:00Z", Hashtags: []string{"#fitness"}, LikesCount: 40},
		{ID: "c", PostContent: "Recipe of the day", PostType: models.PostTypeText, CreatedAt: "2025-06-01T09:00:00Z", Hashtags: []string{"#cooking", "#run"}, LikesCount: 12},
	}
}

func TestDeriveViewSearchContentCaseInsensitive(t *testing.T) {
	view := DeriveView(explorePosts(), "run", "", SortNewest)
	require.Equal(t, []string{"a", "c"}, ids(view))
}

func TestDeriveViewSearchMatchesHashtags(t *testing.T) {
	view := DeriveView(explorePosts(), "outdoors", "", SortNewest)
	require.Equal(t, []string{"a"}, ids(view))
}

func TestDeriveViewTypeFilter(t *testing.T) {
	view := DeriveView(explorePosts(), "", models.PostTypeVideo, SortNewest)
	require.Equal(t, []string{"b"}, ids(view))

	all := DeriveView(explorePosts(), "", "all", SortNewest)
	require.Len(t, all, 3)
}

func TestDeriveViewSortOrders(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, ids(DeriveView(explorePosts(), "", "", SortNewest)))
	require.Equal(t, []string{"c", "b", "a"}, ids(DeriveView(explorePosts(), "", "", SortOldest)))
	require.Equal(t, []string{"b", "c", "a"}, ids(DeriveView(explorePosts(), "", "", SortPopular)))
}

func TestDeriveViewUnknownOrderDefaultsToNewest(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, ids(DeriveView(explorePosts(), "", "", SortOrder("trending"))))
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	posts := explorePosts()
	_ = DeriveView(posts, "", "", SortOldest)
	require.Equal(t, []string{"a", "b", "c"}, ids(posts))
}
