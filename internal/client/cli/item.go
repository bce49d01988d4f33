package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/api"
)

// Show prompts for an id and prints the matching record, or "No user found"
// when the id does not exist (a miss is not an error).
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if user == nil {
		fmt.Println("No user found")
		return nil
	}

	fmt.Printf("%s: %s (%s), age %d, married: %s\n",
		user.ID, user.Name, user.Username, user.Age, formatMarried(user.IsMarried))
	return nil
}

// Add prompts for the new user's fields and creates the record.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	age, err := GetInt(a.reader, "Enter age", os.Stdout)
	if err != nil {
		return err
	}
	isMarried, err := GetBool(a.reader, "Married? (y/n)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.CreateUser(ctx, name, userName, password, age, isMarried)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Created user with id", user.ID)
	return nil
}

// Update prompts for an id and the fields to change. Empty answers leave
// the field unchanged.
func (a *App) Update(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	upd := &api.UserUpdate{}

	upd.Name, err = GetOptionalText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	upd.Age, err = GetOptionalInt(a.reader, "New age (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	upd.IsMarried, err = GetOptionalBool(a.reader, "Married? (y/n, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.UpdateUser(ctx, id, upd)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Updated user", user.ID)
	return nil
}
