// Package sessions holds the token registry backends. Tokens never expire
// and are never revoked server-side; if expiry is ever needed it belongs
// behind this interface.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// Repository records issued session tokens.
type Repository interface {
	// Create stores a token -> user id mapping.
	Create(ctx context.Context, userID string, token string) error

	// Find resolves a token to its session. Unknown tokens return
	// common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.Session, error)
}
