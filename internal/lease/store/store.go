// Package store persists leases as a JSON collection in the record store.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/lease"
	"github.com/nirbeaver/property-management/internal/store"
)

type Store struct {
	db *store.Store
	mu sync.Mutex
}

func New(db *store.Store) *Store {
	return &Store{db: db}
}

func (s *Store) loadAll() ([]*lease.Lease, error) {
	var leases []*lease.Lease

	err := s.db.Load(store.CollectionLeases, &leases)
	if err == nil {
		return leases, nil
	}

	if !errors.Is(err, store.ErrNotFound) {
		slog.Warn("resetting leases collection", "error", err)
	}

	leases = seedLeases()
	if err := s.db.Save(store.CollectionLeases, leases); err != nil {
		return nil, fmt.Errorf("seeding leases: %w", err)
	}

	return leases, nil
}

func (s *Store) CreateLease(_ context.Context, l *lease.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leases, err := s.loadAll()
	if err != nil {
		return err
	}

	l.ID = uuid.New()
	l.CreatedAt = time.Now().UTC()

	leases = append(leases, l)

	return s.db.Save(store.CollectionLeases, leases)
}

func (s *Store) ListLeases(_ context.Context) ([]*lease.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadAll()
}

func (s *Store) DeleteLease(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leases, err := s.loadAll()
	if err != nil {
		return err
	}

	for i, l := range leases {
		if l.ID == id {
			leases = append(leases[:i], leases[i+1:]...)
			return s.db.Save(store.CollectionLeases, leases)
		}
	}

	return lease.ErrNotFound
}

func seedLeases() []*lease.Lease {
	now := time.Now().UTC()

	return []*lease.Lease{
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyTiara,
			TenantID:    store.SeedTenantJohn,
			Unit:        "A1",
			MonthlyRent: 250000,
			StartDate:   time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(now.Year()+1, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyOceanView,
			TenantID:    store.SeedTenantJane,
			Unit:        "B1",
			MonthlyRent: 350000,
			StartDate:   time.Date(now.Year()-1, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(now.Year()+1, 6, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:   now,
		},
	}
}
