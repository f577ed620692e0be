// Package store persists user accounts in the users collection.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/auth"
	"github.com/nirbeaver/property-management/internal/store"
)

type Store struct {
	db *store.Store
	mu sync.Mutex
}

func New(db *store.Store) *Store {
	return &Store{db: db}
}

// load reads the users collection. There are no seed users; a fresh
// installation starts empty and the first account comes from SignUp.
func (s *Store) load() ([]*auth.User, error) {
	var users []*auth.User

	err := s.db.Load(store.CollectionUsers, &users)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return users, nil
}

func (s *Store) CreateUser(_ context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return auth.ErrEmailTaken
		}
	}

	users = append(users, user)

	return s.db.Save(store.CollectionUsers, users)
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return nil, auth.ErrNotFound
}

func (s *Store) GetUser(_ context.Context, id uuid.UUID) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, auth.ErrNotFound
}
