package cli

import (
	"context"
	"fmt"

	"github.com/pulsefeed/pulsefeed/internal/common"
)

// registerScreen collects a username and matching passwords, then drives
// the auth machine. Field validation stays here; the machine only ever
// sees well-formed input. On success the machine routes back to login —
// registration does not establish a session.
func (a *App) registerScreen(ctx context.Context) {
	userName, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if userName == "" {
		fmt.Fprintln(a.out, "Username is required.")
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		fmt.Fprintln(a.out, "Password is required.")
		return
	}

	confirm, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	defer common.WipeByteArray(confirm)
	if string(password) != string(confirm) {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return
	}

	a.auth.Register(ctx, userName, string(password))

	st := a.auth.State()
	if st.Err != "" {
		fmt.Fprintln(a.out, st.Err)
		return
	}
	fmt.Fprintln(a.out, "Registered! Please log in.")
}
