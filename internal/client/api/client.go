// Package api is the REST collaborator boundary: a small client over the
// resource store's JSON-over-HTTP surface.
package api

import (
	"context"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

// Client is the transport the state machines talk through.
//
// Contract:
//   - LookupUser: GET /users filtered by username and password equality.
//   - FindByUsername: GET /users filtered by username only.
//   - CreateUser: POST /users; anything but 201 is a failure.
//   - ListPosts: GET /posts; the store returns the entire collection,
//     pagination happens on the client.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	LookupUser(ctx context.Context, username, password string) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
}
