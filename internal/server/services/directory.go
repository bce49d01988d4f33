// Package services contains server-side business logic. DirectoryService is
// the facade behind every external operation: it resolves the caller, runs
// the store operation, and sanitizes everything it returns.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
)

// LoginResult bundles the issued token with the sanitized user record.
type LoginResult struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

// DirectoryService combines the user store and the auth guard into the five
// external operations. Each call is stateless; the only per-call state is
// whether the credential resolves to a user.
type DirectoryService struct {
	users        users.Repository
	guard        *auth.Guard
	authDisabled bool
}

// NewDirectoryService constructs the facade. With authDisabled set, the
// guarded operations accept anonymous callers (the legacy open variant);
// login keeps working either way.
func NewDirectoryService(u users.Repository, g *auth.Guard, authDisabled bool) *DirectoryService {
	return &DirectoryService{users: u, guard: g, authDisabled: authDisabled}
}

// requireCaller rejects the call unless the credential resolves to a user.
func (s *DirectoryService) requireCaller(ctx context.Context, credential string) error {
	if s.authDisabled {
		return nil
	}
	caller, err := s.guard.ResolveCaller(ctx, credential)
	if err != nil {
		return err
	}
	if caller == nil {
		return common.ErrorUnauthorized
	}
	return nil
}

// Login authenticates the credentials and issues a session token. On any
// failure no token is recorded and no state changes.
func (s *DirectoryService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.guard.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.guard.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}

// ListUsers returns all records, sanitized, in insertion order.
func (s *DirectoryService) ListUsers(ctx context.Context, credential string) ([]*models.PublicUser, error) {
	if err := s.requireCaller(ctx, credential); err != nil {
		return nil, err
	}

	list, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	result := make([]*models.PublicUser, 0, len(list))
	for _, u := range list {
		result = append(result, u.Public())
	}
	return result, nil
}

// GetUser returns the sanitized record with the given id, or (nil, nil)
// when no such record exists: a miss is a null result, not a failure.
func (s *DirectoryService) GetUser(ctx context.Context, credential string, id string) (*models.PublicUser, error) {
	if err := s.requireCaller(ctx, credential); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return u.Public(), nil
}

// CreateUser stores a new record. The username must be free; the id is
// assigned by the store.
func (s *DirectoryService) CreateUser(ctx context.Context, credential string, name, username, password string, age int, isMarried bool) (*models.PublicUser, error) {
	if err := s.requireCaller(ctx, credential); err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, &models.User{
		Name:      name,
		Username:  username,
		Password:  password,
		Age:       age,
		IsMarried: isMarried,
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u.Public(), nil
}

// UpdateUser applies the provided fields to an existing record and returns
// the post-mutation view. Absent fields keep their prior values.
func (s *DirectoryService) UpdateUser(ctx context.Context, credential string, id string, upd *models.UserUpdate) (*models.PublicUser, error) {
	if err := s.requireCaller(ctx, credential); err != nil {
		return nil, err
	}

	u, err := s.users.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return u.Public(), nil
}

// SeedDemoData loads the three demo records into an empty store so they
// receive ids "1".."3". A non-empty store is left untouched.
func (s *DirectoryService) SeedDemoData(ctx context.Context) error {
	n, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	seed := []*models.User{
		{Name: "John Doe", Username: "john", Password: "password123", Age: 30, IsMarried: true},
		{Name: "Jane Smith", Username: "jane", Password: "password456", Age: 25, IsMarried: false},
		{Name: "Alice Johnson", Username: "alice", Password: "password789", Age: 28, IsMarried: false},
	}

	for _, u := range seed {
		if _, err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("error seeding users: %w", err)
		}
	}
	return nil
}
