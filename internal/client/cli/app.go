// Package cli is the interactive surface of the feed client: a REPL whose
// commands stand in for the mobile app's screens. It owns no business
// logic; everything flows through the auth and feed state machines.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/pulsefeed/pulsefeed/internal/client/api"
	"github.com/pulsefeed/pulsefeed/internal/client/config"
	"github.com/pulsefeed/pulsefeed/internal/client/session"
	"github.com/pulsefeed/pulsefeed/internal/client/state"
	"github.com/pulsefeed/pulsefeed/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	auth *state.Auth
	feed *state.Feed

	db    *sql.DB
	route state.Route

	reader *bufio.Reader
	out    io.Writer

	// Feed screen cursor and in-flight flag. The list owns paging: the
	// machines only ever see the page the screen asks for.
	page           int
	isFetchingMore bool
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing session database: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.BaseAPIURL, cfg.RequestTimeout)

	app := &App{
		config: cfg,
		log:    log,
		db:     db,
		route:  state.RouteLogin,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		page:   1,
	}
	app.auth = state.NewAuth(apiClient, session.NewSQLiteStore(db), app, log)
	app.feed = state.NewFeed(apiClient, log)
	return app, nil
}

// Replace implements state.Navigator: navigation signals from the machines
// become screen switches.
func (a *App) Replace(route state.Route) {
	a.route = route
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().User != nil
}
