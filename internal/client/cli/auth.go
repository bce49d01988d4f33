package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for a username and password and tries to
// authenticate. On success the API client keeps the session token in memory.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.api.Login(ctx, userName, password)
	if err != nil {
		fmt.Println("Login unsuccessful:", err.Error())
		return err
	}

	a.userName = result.User.Username
	fmt.Println("Login successful")
	return nil
}

// Logout discards the session token locally. The server keeps its session
// entry; there is no server-side logout.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}
