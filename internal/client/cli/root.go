package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsefeed/pulsefeed/internal/client/state"
)

func (a *App) getStatus() string {
	if st := a.auth.State(); st.User != nil {
		return fmt.Sprintf("(%s)", st.User.Username)
	}
	return fmt.Sprintf("(%s)", a.route)
}

// Run bootstraps the persisted session and enters the command loop. The
// current route gates which commands are available, the way the app's
// navigation stack gates its screens.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to Pulsefeed (type 'help' for commands)")

	a.auth.Bootstrap(ctx)

	for {
		fmt.Fprintf(a.out, "pulse %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			a.help()
		case "login":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Already signed in. Use 'logout' first.")
				continue
			}
			a.route = state.RouteLogin
			a.loginScreen(ctx)
		case "register":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Already signed in. Use 'logout' first.")
				continue
			}
			a.route = state.RouteRegister
			a.registerScreen(ctx)
		case "feed":
			if a.requireLogin() {
				a.feedScreen(ctx)
			}
		case "more":
			if a.requireLogin() {
				a.loadMore(ctx)
			}
		case "refresh":
			if a.requireLogin() {
				a.refreshFeed(ctx)
			}
		case "explore":
			if a.requireLogin() {
				a.exploreScreen(ctx)
			}
		case "compose":
			if a.requireLogin() {
				a.composeScreen(ctx)
			}
		case "whoami":
			a.whoami()
		case "logout":
			a.auth.Logout(ctx)
			a.feed.Reset()
			a.page = 1
			fmt.Fprintln(a.out, "Signed out.")
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: feed, more, refresh, explore, compose, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, register, exit")
	}
}

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return false
	}
	return true
}

func (a *App) whoami() {
	st := a.auth.State()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}
	fmt.Fprintf(a.out, "%s (id %s)\n", st.User.Username, st.User.ID)
}
