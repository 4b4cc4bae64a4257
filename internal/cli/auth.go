package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/danunant/bbank/internal/common"
)

// getSimpleText and getPIN are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPIN = GetPIN

// Register prompts for a username, a display name and a 4-digit PIN and
// creates the user. The PIN byte slice is wiped before returning. Business
// rejections are printed rather than returned so the loop keeps running.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Your display name", os.Stdout)
	if err != nil {
		return err
	}

	pin, err := getPIN(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	if _, err := a.auth.RegisterUser(ctx, userName, displayName, string(pin)); err != nil {
		switch {
		case errors.Is(err, common.ErrorUsernameTaken):
			fmt.Println("That username is already taken.")
		case errors.Is(err, common.ErrorInvalidPIN):
			fmt.Println("PIN must be exactly 4 digits.")
		case errors.Is(err, common.ErrorBlankField):
			fmt.Println("Username and display name cannot be blank.")
		default:
			return err
		}
		return nil
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts for credentials and tries to authenticate. A wrong PIN and
// an unknown username print the same message.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	pin, err := getPIN(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	ok, err := a.auth.Login(ctx, userName, string(pin))
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("Login unsuccessful")
		a.userName = ""
		return nil
	}

	log.Printf("Login successful")
	a.refreshUserName(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.userName = ""
	return nil
}
