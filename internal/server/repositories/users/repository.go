// Package users defines the authoritative user store and its backends.
package users

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// Repository is the contract every user store backend implements.
//
// Lookups that find nothing return common.ErrorNotFound; Create returns
// common.ErrorConflict when the username is already taken. Failed calls
// leave the store unchanged.
type Repository interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*models.User, error)

	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername returns the user with the given username. Used only
	// during login.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create assigns the next id to the user and stores it.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Update applies the provided fields to the user with the given id and
	// returns the post-mutation record.
	Update(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error)

	// Count returns the number of stored users.
	Count(ctx context.Context) (int, error)
}
