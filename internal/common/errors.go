// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth flow errors. The state machines translate these into the
	// user-facing messages held in state; callers that want to branch on
	// the cause match the sentinels instead of parsing strings.
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrUsernameTaken        = errors.New("username already taken")
)
