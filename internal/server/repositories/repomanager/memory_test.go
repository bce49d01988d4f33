package repomanager

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()
	ctx := context.Background()

	require.NoError(t, m.RunMigrations(ctx))

	// the vended repositories are stable across calls
	u, err := m.Users().Create(ctx, &models.User{Name: "Bob", Username: "bob", Password: "pw"})
	require.NoError(t, err)

	got, err := m.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	require.NoError(t, m.Sessions().Create(ctx, u.ID, "token-abc"))
	s, err := m.Sessions().Find(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, u.ID, s.UserID)

	assert.NoError(t, m.Close())
}
