// Package server is a local stand-in for the REST resource store the
// client talks to: an in-memory collection of users and posts behind the
// same generic contract (query-filtered /users, full-collection /posts).
package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

// Store holds the resource collections. All access goes through the
// mutex; handlers may run concurrently.
type Store struct {
	mu    sync.RWMutex
	users []models.User
	posts []models.Post
}

func NewStore() *Store {
	return &Store{}
}

// FindUsers returns users matching the given fields by equality. Empty
// values are no-ops, so FindUsers("", "") returns the whole collection.
func (s *Store) FindUsers(username, password string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0)
	for _, u := range s.users {
		if username != "" && u.Username != username {
			continue
		}
		if password != "" && u.Password != password {
			continue
		}
		out = append(out, u)
	}
	return out
}

// CreateUser inserts a user with a fresh id and returns it. The store is
// generic: it does not enforce username uniqueness, the client checks
// before posting.
func (s *Store) CreateUser(username, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{ID: uuid.NewString(), Username: username, Password: password}
	s.users = append(s.users, u)
	return u
}

// Posts returns a copy of the whole post collection.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// AddPosts appends posts to the collection.
func (s *Store) AddPosts(posts ...models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, posts...)
}
