// Package auth implements the authentication guard: credential checks,
// session token issuing, and caller resolution.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
	"github.com/google/uuid"
)

// Guard authenticates credentials and resolves session tokens to users.
// It is the only component allowed to read the stored password.
type Guard struct {
	users    users.Repository
	sessions sessions.Repository
}

func NewGuard(u users.Repository, s sessions.Repository) *Guard {
	return &Guard{users: u, sessions: s}
}

// ExtractToken returns the session token carried in a credential value.
// An optional "Bearer " prefix is stripped; otherwise the raw value is the
// token. Empty input yields an empty token (unauthenticated, not an error).
func ExtractToken(credential string) string {
	credential = strings.TrimSpace(credential)
	if strings.HasPrefix(credential, common.AuthScheme+" ") {
		credential = strings.TrimPrefix(credential, common.AuthScheme+" ")
	}
	return strings.TrimSpace(credential)
}

func (g *Guard) checkPassword(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Authenticate verifies a username/password pair and returns the matching
// user. Unknown usernames and mismatched passwords are indistinguishable to
// the caller.
func (g *Guard) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := g.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !g.checkPassword(user.Password, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// IssueToken generates a fresh unguessable token for the user and records
// it in the session registry. UUIDv4 carries 122 bits of randomness, which
// makes collisions negligible.
func (g *Guard) IssueToken(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := g.sessions.Create(ctx, userID, token); err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ResolveCaller resolves the credential material of a request to the acting
// user. A missing or unknown token resolves to (nil, nil): "unauthenticated"
// is a state, not an error. It becomes an error only at call sites that
// require an authenticated caller.
func (g *Guard) ResolveCaller(ctx context.Context, credential string) (*models.User, error) {
	token := ExtractToken(credential)
	if token == "" {
		return nil, nil
	}

	session, err := g.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, common.ErrorInternal
	}

	user, err := g.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
