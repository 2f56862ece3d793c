package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaccx/internal/client/models"
)

// getSimpleText, getPassword and getPrice are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getPrice      = GetPrice
)

// Register creates an account. The server generates the id and password;
// both are printed once and cached locally so `login` works without them.
func (a *App) Register(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	creds, err := a.authService.Register(ctx)
	if err != nil {
		return err
	}
	a.loggedIn, a.userID = false, ""

	fmt.Fprintf(a.out, "User id:  %s\nPassword: %s\n", creds.UserID, creds.Password)
	fmt.Fprintln(a.out, "Credentials saved locally, run 'login' to start a session.")
	return nil
}

// Login starts a session. Without arguments it uses the cached
// credentials; with a user id it prompts for the password.
func (a *App) Login(ctx context.Context, args []string) error {
	var creds models.Credentials
	if len(args) > 0 {
		password, err := getPassword(a.out)
		if err != nil {
			return err
		}
		creds = models.Credentials{UserID: args[0], Password: password}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	userID, err := a.authService.Login(ctx, creds)
	if err != nil {
		return err
	}
	a.loggedIn, a.userID = true, userID

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout drops the session token; cached credentials stay.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.loggedIn, a.userID = false, ""
	return nil
}

// Forget wipes cached credentials and the session.
func (a *App) Forget(ctx context.Context) error {
	if err := a.authService.Forget(ctx); err != nil {
		return err
	}
	a.loggedIn, a.userID = false, ""
	fmt.Fprintln(a.out, "Local credentials removed")
	return nil
}
