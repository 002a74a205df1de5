package cli

import (
	"context"
	"fmt"

	"github.com/pulsefeed/pulsefeed/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginScreen prompts for credentials and drives the auth machine. The
// outcome is read back from auth state, the way the login form renders the
// error slice.
func (a *App) loginScreen(ctx context.Context) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
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

	a.auth.Login(ctx, userName, string(password))

	st := a.auth.State()
	if st.Err != "" {
		fmt.Fprintln(a.out, st.Err)
		return
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", st.User.Username)
}
