package api

import "errors"

var (
	// ErrUnavailable covers every transport failure: the request did not
	// go out, timed out, or came back with a non-2xx status.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotCreated is returned when a create call succeeds at the
	// transport level but the store does not answer 201.
	ErrNotCreated = errors.New("resource not created")
)
