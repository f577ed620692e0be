// Package store implements the record store: named collections persisted as
// whole-file JSON arrays under a data directory. Every save overwrites the
// full collection (last-write-wins); there are no partial updates and no
// cross-collection transactions.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names are fixed logical keys; each maps to <dir>/<name>.json.
const (
	CollectionProperties      = "properties"
	CollectionTenants         = "tenants"
	CollectionTransactions    = "transactions"
	CollectionLeases          = "leases"
	CollectionTenantDocuments = "tenantDocuments"
	CollectionTenantNotes     = "tenantNotes"
	CollectionNotifications   = "notifications"
	CollectionUserProfile     = "userProfile"
	CollectionCompanySettings = "companySettings"
	CollectionAppSettings     = "appSettings"
	CollectionUsers           = "users"
)

// ErrNotFound is returned by Load when a collection has never been saved.
var ErrNotFound = errors.New("collection not found")

type Store struct {
	dir string

	// Serializes read-modify-write cycles within this process. Concurrent
	// processes still race; last write wins, accepted by design scope.
	mu sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a collection into v. It returns ErrNotFound when the collection
// has never been persisted; a malformed file surfaces as an unmarshal error
// so callers can fall back to seed data.
func (s *Store) Load(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(name, v)
}

func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}

		return fmt.Errorf("reading collection %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding collection %s: %w", name, err)
	}

	return nil
}

// Save overwrites the whole collection. The write goes to a temp file first
// and is renamed into place so readers never observe a half-written file.
func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(name, v)
}

func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("writing collection %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing collection %s: %w", name, err)
	}

	return nil
}
