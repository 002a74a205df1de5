package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pulsefeed/pulsefeed/internal/client/api"
	"github.com/pulsefeed/pulsefeed/internal/client/models"
	"github.com/pulsefeed/pulsefeed/internal/client/session"
	"github.com/pulsefeed/pulsefeed/internal/common"
	"github.com/pulsefeed/pulsefeed/internal/logging"
)

// User-facing outcome messages. These land in AuthState.Err verbatim; the
// presentation layer displays them as-is.
const (
	msgIncorrectCredentials = "Incorrect credentials."
	msgLoginFailed          = "Login failed. Please try again."
	msgUsernameTaken        = "Username already taken"
	msgRegistrationFailed   = "Registration failed"
	msgRegistrationError    = "An error occurred during registration"
)

// AuthState is the auth slice of application state. User is nil while
// anonymous; Err holds the last operation's user-facing failure message.
type AuthState struct {
	User      *models.User
	IsLoading bool
	Err       string
}

// Pure transitions. Each takes the current state by value and returns the
// next one; no transition touches the outside world.

func reduceAuthPending(s AuthState) AuthState {
	s.IsLoading = true
	s.Err = ""
	return s
}

func reduceLoginFulfilled(s AuthState, u models.User) AuthState {
	s.IsLoading = false
	s.User = &u
	s.Err = ""
	return s
}

func reduceAuthRejected(s AuthState, msg string) AuthState {
	s.IsLoading = false
	s.User = nil
	s.Err = msg
	return s
}

func reduceRegisterFulfilled(s AuthState) AuthState {
	s.IsLoading = false
	s.Err = ""
	return s
}

// reduceBootstrap applies the restored snapshot; u may be nil (anonymous).
func reduceBootstrap(s AuthState, u *models.User) AuthState {
	s.User = u
	return s
}

func reduceLogout(s AuthState) AuthState {
	s.User = nil
	s.Err = ""
	return s
}

// Auth owns the login/registration/logout lifecycle and the persisted
// session. Every operation ends in a state transition; failures never
// escape as panics, and the returned errors mirror what is already in
// state for callers that want to branch on the cause.
type Auth struct {
	mu    sync.Mutex
	state AuthState

	api      api.Client
	sessions session.Store
	nav      Navigator
	log      logging.Logger
}

func NewAuth(client api.Client, sessions session.Store, nav Navigator, log logging.Logger) *Auth {
	return &Auth{api: client, sessions: sessions, nav: nav, log: log}
}

// State returns a snapshot of the current auth state.
func (a *Auth) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Auth) setState(f func(AuthState) AuthState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = f(a.state)
}

// Bootstrap restores a persisted session snapshot, if any, and signals the
// matching navigation target. It never fails: a missing or malformed
// snapshot degrades to anonymous with a logged diagnostic.
func (a *Auth) Bootstrap(ctx context.Context) {
	user, err := a.sessions.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed, continuing anonymous", "error", err)
		user = nil
	}

	a.setState(func(s AuthState) AuthState { return reduceBootstrap(s, user) })

	if user != nil {
		a.nav.Replace(RouteHome)
	} else {
		a.nav.Replace(RouteLogin)
	}
}

// Login looks the credentials up against the user resource. On a match it
// persists the snapshot, becomes authenticated and signals the home route;
// zero matches or any transport failure end in a failure state with the
// user never partially updated.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	a.setState(reduceAuthPending)

	matches, err := a.api.LookupUser(ctx, username, password)
	if err != nil {
		a.log.Error(ctx, "login lookup failed", "error", err)
		a.setState(func(s AuthState) AuthState { return reduceAuthRejected(s, msgLoginFailed) })
		return err
	}
	if len(matches) == 0 {
		a.setState(func(s AuthState) AuthState { return reduceAuthRejected(s, msgIncorrectCredentials) })
		return common.ErrIncorrectCredentials
	}

	user := matches[0]
	if err := a.sessions.Save(ctx, user); err != nil {
		a.log.Error(ctx, "session persist failed", "error", err)
		a.setState(func(s AuthState) AuthState { return reduceAuthRejected(s, msgLoginFailed) })
		return err
	}

	a.setState(func(s AuthState) AuthState { return reduceLoginFulfilled(s, user) })
	a.nav.Replace(RouteHome)
	return nil
}

// Register creates the user unless the username is already taken. On
// success it does not authenticate; it signals the login route so the
// user signs in explicitly.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	a.setState(reduceAuthPending)

	existing, err := a.api.FindByUsername(ctx, username)
	if err != nil {
		a.log.Error(ctx, "username lookup failed", "error", err)
		a.setState(func(s AuthState) AuthState { return reduceAuthRejected(s, msgRegistrationError) })
		return err
	}
	if len(existing) > 0 {
		a.setState(func(s AuthState) AuthState { return reduceAuthRejected(s, msgUsernameTaken) })
		return common.ErrUsernameTaken
	}

	if _, err := a.api.CreateUser(ctx, username, password); err != nil {
		a.log.Error(ctx, "user create failed", "error", err)
		msg := msgRegistrationError
		if errors.Is(err, api.ErrNotCreated) {
			msg = msgRegistrationFailed
		}
		a.setState(func(s AuthState) AuthState { return reduceAuthRejected(s, msg) })
		return fmt.Errorf("registering user: %w", err)
	}

	a.setState(reduceRegisterFulfilled)
	a.nav.Replace(RouteLogin)
	return nil
}

// Logout clears the persisted snapshot and returns to anonymous. Safe to
// invoke with no active session; a failing snapshot wipe is logged but the
// in-memory state is cleared regardless.
func (a *Auth) Logout(ctx context.Context) {
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Warn(ctx, "session clear failed", "error", err)
	}
	a.setState(reduceLogout)
	a.nav.Replace(RouteLogin)
}
