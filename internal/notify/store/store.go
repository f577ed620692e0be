// Package store persists the notification feed in the record store.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/nirbeaver/property-management/internal/notify"
	"github.com/nirbeaver/property-management/internal/store"
)

type Store struct {
	db *store.Store
	mu sync.Mutex
}

func New(db *store.Store) *Store {
	return &Store{db: db}
}

// load reads the feed. It starts empty; there is nothing to seed.
func (s *Store) load() ([]*notify.Notification, error) {
	var notifications []*notify.Notification

	err := s.db.Load(store.CollectionNotifications, &notifications)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return notifications, nil
}

func (s *Store) CreateNotification(_ context.Context, n *notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load()
	if err != nil {
		return err
	}

	notifications = append(notifications, n)

	return s.db.Save(store.CollectionNotifications, notifications)
}

func (s *Store) ListNotifications(_ context.Context) ([]*notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load()
	if err != nil {
		return nil, err
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}

func (s *Store) UpdateNotification(_ context.Context, n *notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load()
	if err != nil {
		return err
	}

	for i, existing := range notifications {
		if existing.ID == n.ID {
			notifications[i] = n

			return s.db.Save(store.CollectionNotifications, notifications)
		}
	}

	return notify.ErrNotFound
}

func (s *Store) DeleteAllNotifications(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Save(store.CollectionNotifications, []*notify.Notification{})
}
