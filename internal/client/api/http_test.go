package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 2*time.Second)
}

func TestLookupUserSendsCredentials(t *testing.T) {
	var gotUser, gotPass string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		gotUser = r.URL.Query().Get("username")
		gotPass = r.URL.Query().Get("password")
		_ = json.NewEncoder(w).Encode([]models.User{{ID: "u1", Username: "ava"}})
	})

	users, err := c.LookupUser(context.Background(), "ava", "pw123")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "ava", gotUser)
	require.Equal(t, "pw123", gotPass)
}

func TestFindByUsernameOmitsPassword(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasPassword := r.URL.Query()["password"]
		require.False(t, hasPassword)
		_ = json.NewEncoder(w).Encode([]models.User{})
	})

	users, err := c.FindByUsername(context.Background(), "ava")
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestCreateUserRequires201(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req createUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Username: req.Username})
	})

	created, err := c.CreateUser(context.Background(), "ava", "pw123")
	require.NoError(t, err)
	require.Equal(t, "u1", created.ID)
	require.Equal(t, "ava", created.Username)
}

func TestCreateUserNon201IsNotCreated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.CreateUser(context.Background(), "ava", "pw123")
	require.ErrorIs(t, err, ErrNotCreated)
}

func TestListPosts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Post{{ID: "p1"}, {ID: "p2"}})
	})

	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
}

func TestNon2xxCollapsesToUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListPosts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNetworkErrorCollapsesToUnavailable(t *testing.T) {
	// Point the client at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewHTTPClient(srv.URL, time.Second)

	_, err := c.ListPosts(context.Background())
	require.True(t, errors.Is(err, ErrUnavailable))
}
