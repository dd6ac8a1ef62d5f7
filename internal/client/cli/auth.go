package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lumina/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const minPasswordLength = 6

// Signup prompts for name, email and password, creates the account and
// logs the new user in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if name == "" || email == "" || len(password) == 0 {
		return common.ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return common.ErrPasswordTooShort
	}

	u, err := a.auth.Signup(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	a.session.Set(u)
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	a.arrive(ctx)
	return nil
}

// Login prompts for credentials and replaces the current session on success.
// A failed attempt leaves the session as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		return common.ErrMissingFields
	}

	u, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.session.Set(u)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	a.arrive(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session.Clear()
	a.lastCategory = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(_ context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "Interests: %s\n", strings.Join(u.Interests, ", "))
	fmt.Fprintf(a.out, "ID: %s\n", u.ID)
	return nil
}
