// Package store persists tenants and their notes and documents as three
// JSON collections in the record store.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/store"
	"github.com/nirbeaver/property-management/internal/tenant"
)

type Store struct {
	db *store.Store
	mu sync.Mutex
}

func New(db *store.Store) *Store {
	return &Store{db: db}
}

// loadCollection reads a collection, substituting seed on first access or a
// malformed file.
func loadCollection[T any](db *store.Store, name string, seed func() []T) ([]T, error) {
	var recs []T

	err := db.Load(name, &recs)
	if err == nil {
		return recs, nil
	}

	if !errors.Is(err, store.ErrNotFound) {
		slog.Warn("resetting collection", "collection", name, "error", err)
	}

	recs = seed()
	if err := db.Save(name, recs); err != nil {
		return nil, fmt.Errorf("seeding %s: %w", name, err)
	}

	return recs, nil
}

func (s *Store) CreateTenant(_ context.Context, t *tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := loadCollection(s.db, store.CollectionTenants, seedTenants)
	if err != nil {
		return err
	}

	t.ID = uuid.New()
	t.CreatedAt = time.Now().UTC()

	tenants = append(tenants, t)

	return s.db.Save(store.CollectionTenants, tenants)
}

func (s *Store) GetTenant(_ context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := loadCollection(s.db, store.CollectionTenants, seedTenants)
	if err != nil {
		return nil, err
	}

	for _, t := range tenants {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, tenant.ErrNotFound
}

func (s *Store) ListTenants(_ context.Context) ([]*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadCollection(s.db, store.CollectionTenants, seedTenants)
}

func (s *Store) UpdateTenant(_ context.Context, t *tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := loadCollection(s.db, store.CollectionTenants, seedTenants)
	if err != nil {
		return err
	}

	for i, existing := range tenants {
		if existing.ID == t.ID {
			now := time.Now().UTC()
			t.UpdatedAt = &now
			t.CreatedAt = existing.CreatedAt
			tenants[i] = t

			return s.db.Save(store.CollectionTenants, tenants)
		}
	}

	return tenant.ErrNotFound
}

func (s *Store) DeleteTenant(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := loadCollection(s.db, store.CollectionTenants, seedTenants)
	if err != nil {
		return err
	}

	for i, existing := range tenants {
		if existing.ID == id {
			tenants = append(tenants[:i], tenants[i+1:]...)
			return s.db.Save(store.CollectionTenants, tenants)
		}
	}

	return tenant.ErrNotFound
}

func (s *Store) CreateNote(_ context.Context, n *tenant.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := loadCollection(s.db, store.CollectionTenantNotes, seedNotes)
	if err != nil {
		return err
	}

	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()

	notes = append(notes, n)

	return s.db.Save(store.CollectionTenantNotes, notes)
}

func (s *Store) ListNotes(_ context.Context, tenantID uuid.UUID) ([]*tenant.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := loadCollection(s.db, store.CollectionTenantNotes, seedNotes)
	if err != nil {
		return nil, err
	}

	out := make([]*tenant.Note, 0, len(notes))

	for _, n := range notes {
		if n.TenantID == tenantID {
			out = append(out, n)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (s *Store) DeleteNote(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := loadCollection(s.db, store.CollectionTenantNotes, seedNotes)
	if err != nil {
		return err
	}

	for i, n := range notes {
		if n.ID == id {
			notes = append(notes[:i], notes[i+1:]...)
			return s.db.Save(store.CollectionTenantNotes, notes)
		}
	}

	return tenant.ErrNoteNotFound
}

func (s *Store) CreateDocument(_ context.Context, d *tenant.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := loadCollection(s.db, store.CollectionTenantDocuments, seedDocuments)
	if err != nil {
		return err
	}

	d.ID = uuid.New()
	d.UploadDate = time.Now().UTC()

	docs = append(docs, d)

	return s.db.Save(store.CollectionTenantDocuments, docs)
}

func (s *Store) ListDocuments(_ context.Context, tenantID uuid.UUID) ([]*tenant.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := loadCollection(s.db, store.CollectionTenantDocuments, seedDocuments)
	if err != nil {
		return nil, err
	}

	out := make([]*tenant.Document, 0, len(docs))

	for _, d := range docs {
		if d.TenantID == tenantID {
			out = append(out, d)
		}
	}

	return out, nil
}

func (s *Store) DeleteDocument(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := loadCollection(s.db, store.CollectionTenantDocuments, seedDocuments)
	if err != nil {
		return err
	}

	for i, d := range docs {
		if d.ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return s.db.Save(store.CollectionTenantDocuments, docs)
		}
	}

	return tenant.ErrDocumentNotFound
}

func seedTenants() []*tenant.Tenant {
	now := time.Now().UTC()
	tiara := store.SeedPropertyTiara
	oceanView := store.SeedPropertyOceanView
	johnIn := time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC)
	janeIn := time.Date(now.Year()-1, 6, 1, 0, 0, 0, 0, time.UTC)

	return []*tenant.Tenant{
		{
			ID:          store.SeedTenantJohn,
			Name:        "John Doe",
			Email:       "john.doe@email.com",
			Phone:       "(555) 123-4567",
			Status:      tenant.StatusActive,
			PropertyID:  &tiara,
			UnitNumber:  "A1",
			MoveInDate:  &johnIn,
			MonthlyRent: 250000,
			CreatedAt:   now,
		},
		{
			ID:          store.SeedTenantJane,
			Name:        "Jane Smith",
			Email:       "jane.smith@email.com",
			Phone:       "(555) 987-6543",
			Status:      tenant.StatusActive,
			PropertyID:  &oceanView,
			UnitNumber:  "B1",
			MoveInDate:  &janeIn,
			MonthlyRent: 350000,
			CreatedAt:   now,
		},
	}
}

func seedNotes() []*tenant.Note {
	now := time.Now().UTC()

	return []*tenant.Note{
		{
			ID:        uuid.New(),
			TenantID:  store.SeedTenantJohn,
			Content:   "Tenant requested maintenance for the kitchen sink.",
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			TenantID:  store.SeedTenantJohn,
			Content:   "Rent payment consistently on time for the past 6 months.",
			CreatedAt: now,
		},
	}
}

func seedDocuments() []*tenant.Document {
	return nil
}
