package state

import (
	"context"
	"io"
	"log/slog"

	"github.com/pulsefeed/pulsefeed/internal/client/models"
	"github.com/pulsefeed/pulsefeed/internal/logging"
)

// fakeAPI implements api.Client for unit tests, recording calls and
// arguments so tests can assert on collaborator traffic.
type fakeAPI struct {
	LookupRet      []models.User
	LookupErr      error
	LookupCalls    int
	LastLookupUser string
	LastLookupPass string

	FindRet      []models.User
	FindErr      error
	FindCalls    int
	LastFindUser string

	CreateRet   *models.User
	CreateErr   error
	CreateCalls int

	PostsRet   []models.Post
	PostsErr   error
	PostsCalls int
}

func (f *fakeAPI) LookupUser(ctx context.Context, username, password string) ([]models.User, error) {
	f.LookupCalls++
	f.LastLookupUser = username
	f.LastLookupPass = password
	return f.LookupRet, f.LookupErr
}

func (f *fakeAPI) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	f.FindCalls++
	f.LastFindUser = username
	return f.FindRet, f.FindErr
}

func (f *fakeAPI) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	f.CreateCalls++
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if f.CreateRet != nil {
		return f.CreateRet, nil
	}
	return &models.User{ID: "created", Username: username, Password: password}, nil
}

func (f *fakeAPI) ListPosts(ctx context.Context) ([]models.Post, error) {
	f.PostsCalls++
	return f.PostsRet, f.PostsErr
}

// fakeSessions implements session.Store in memory.
type fakeSessions struct {
	Saved      *models.User
	SaveErr    error
	SaveCalls  int
	LoadErr    error
	ClearErr   error
	ClearCalls int
}

func (f *fakeSessions) Save(ctx context.Context, user models.User) error {
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	u := user
	f.Saved = &u
	return nil
}

func (f *fakeSessions) Load(ctx context.Context) (*models.User, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return f.Saved, nil
}

func (f *fakeSessions) Clear(ctx context.Context) error {
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Saved = nil
	return nil
}

// fakeNav records every navigation signal in order.
type fakeNav struct {
	Routes []Route
}

func (f *fakeNav) Replace(route Route) {
	f.Routes = append(f.Routes, route)
}

func (f *fakeNav) last() Route {
	if len(f.Routes) == 0 {
		return ""
	}
	return f.Routes[len(f.Routes)-1]
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
