package cli

import (
	"context"
	"fmt"
	"log"
)

func formatMarried(m bool) string {
	if m {
		return "Yes"
	}
	return "No"
}

// List prints every directory record.
func (a *App) List(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, u := range users {
		fmt.Printf("%s: %s (%s), age %d, married: %s\n",
			u.ID, u.Name, u.Username, u.Age, formatMarried(u.IsMarried))
	}
	return nil
}
