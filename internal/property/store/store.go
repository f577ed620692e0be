// Package store persists properties as a JSON collection in the record
// store, seeding sample data when nothing has been persisted yet.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/property"
	"github.com/nirbeaver/property-management/internal/store"
)

type Store struct {
	db *store.Store
	mu sync.Mutex
}

func New(db *store.Store) *Store {
	return &Store{db: db}
}

func (s *Store) loadAll() ([]*property.Property, error) {
	var props []*property.Property

	err := s.db.Load(store.CollectionProperties, &props)
	if err == nil {
		return props, nil
	}

	if !errors.Is(err, store.ErrNotFound) {
		slog.Warn("resetting properties collection", "error", err)
	}

	props = seedProperties()
	if err := s.db.Save(store.CollectionProperties, props); err != nil {
		return nil, fmt.Errorf("seeding properties: %w", err)
	}

	return props, nil
}

func (s *Store) CreateProperty(_ context.Context, p *property.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadAll()
	if err != nil {
		return err
	}

	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()

	props = append(props, p)

	if err := s.db.Save(store.CollectionProperties, props); err != nil {
		return fmt.Errorf("creating property: %w", err)
	}

	return nil
}

func (s *Store) GetProperty(_ context.Context, id uuid.UUID) (*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	for _, p := range props {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, property.ErrNotFound
}

func (s *Store) ListProperties(_ context.Context) ([]*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadAll()
}

func (s *Store) UpdateProperty(_ context.Context, p *property.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadAll()
	if err != nil {
		return err
	}

	for i, existing := range props {
		if existing.ID == p.ID {
			now := time.Now().UTC()
			p.UpdatedAt = &now
			p.CreatedAt = existing.CreatedAt
			props[i] = p

			if err := s.db.Save(store.CollectionProperties, props); err != nil {
				return fmt.Errorf("updating property: %w", err)
			}

			return nil
		}
	}

	return property.ErrNotFound
}

func seedProperties() []*property.Property {
	now := time.Now().UTC()

	return []*property.Property{
		{
			ID:            store.SeedPropertyTiara,
			Name:          "Tiara",
			Address:       "4557 Camellia Ave, North Hollywood, CA 91602",
			Type:          "Apartment",
			Status:        property.StatusRented,
			MonthlyRent:   250000,
			Bedrooms:      2,
			Bathrooms:     2,
			SquareFeet:    1200,
			Description:   "Modern apartment in North Hollywood",
			Units:         10,
			OccupiedUnits: 8,
			CreatedAt:     now,
		},
		{
			ID:            store.SeedPropertyOceanView,
			Name:          "Ocean View",
			Address:       "456 Beach Rd",
			Type:          "House",
			Status:        property.StatusRented,
			MonthlyRent:   350000,
			Bedrooms:      3,
			Bathrooms:     2,
			SquareFeet:    1800,
			Description:   "Beautiful beach house",
			Units:         15,
			OccupiedUnits: 12,
			CreatedAt:     now,
		},
	}
}
