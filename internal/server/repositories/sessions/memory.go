package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// MemoryRepository keeps the token map in process memory behind a RWMutex.
type MemoryRepository struct {
	mu      sync.RWMutex
	byToken map[string]*models.Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byToken: make(map[string]*models.Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, userID string, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byToken[token] = &models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *s
	return &c, nil
}
