package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/campusfind/campusfind/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates a new account.
// A successful registration also signs the user in. The password byte slice
// is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.identity.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			fmt.Println("An account with this email already exists.")
		} else {
			fmt.Println(err.Error())
		}
		return err
	}

	a.currentUser = user
	fmt.Println("Success! You are now logged in.")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// session is persisted, so the next start of the program picks it up.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.identity.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Println("Invalid email or password.")
		} else {
			fmt.Println(err.Error())
		}
		return err
	}

	a.currentUser = user
	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Logout clears the persisted session and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.identity.Logout(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}
	a.currentUser = nil
	fmt.Println("Logged out.")
	return nil
}

// requireLogin prints a hint and reports whether a user is signed in.
func (a *App) requireLogin() bool {
	if a.currentUser == nil {
		fmt.Println("Please login first ('login' or 'register').")
		return false
	}
	return true
}
