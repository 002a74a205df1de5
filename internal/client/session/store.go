// Package session persists the signed-in user's snapshot across restarts.
// The store holds at most one snapshot at a time; its existence is what
// makes a session "active".
package session

import (
	"context"
	"errors"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
)

// ErrMalformedSnapshot means a snapshot exists but does not decode.
// Callers should treat it as "no session" after logging.
var ErrMalformedSnapshot = errors.New("malformed session snapshot")

// Store is the single-slot session snapshot store.
//
// Contract:
//   - Save overwrites any prior snapshot.
//   - Load returns (nil, nil) when no snapshot exists and
//     ErrMalformedSnapshot when one exists but cannot be decoded.
//   - Clear is idempotent.
type Store interface {
	Save(ctx context.Context, user models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}
