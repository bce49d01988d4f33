// Package repomanager wires together repository backends so the rest of the
// server depends on one constructor-selected implementation.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Sessions() sessions.Repository
	Close() error
}
