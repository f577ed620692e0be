// Package store persists transactions as a JSON collection in the record
// store, seeding sample data when nothing has been persisted yet.
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
	"github.com/nirbeaver/property-management/internal/transaction"
)

type Store struct {
	db *store.Store

	// Guards read-modify-write cycles on the transactions collection.
	mu sync.Mutex
}

func New(db *store.Store) *Store {
	return &Store{db: db}
}

func (s *Store) loadAll() ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction

	err := s.db.Load(store.CollectionTransactions, &txs)
	if err == nil {
		return txs, nil
	}

	if !errors.Is(err, store.ErrNotFound) {
		// Malformed persisted data falls back to the seed dataset.
		slog.Warn("resetting transactions collection", "error", err)
	}

	txs = seedTransactions()
	if err := s.db.Save(store.CollectionTransactions, txs); err != nil {
		return nil, fmt.Errorf("seeding transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) saveAll(txs []*transaction.Transaction) error {
	return s.db.Save(store.CollectionTransactions, txs)
}

func (s *Store) CreateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadAll()
	if err != nil {
		return err
	}

	tx.ID = uuid.New()
	tx.CreatedAt = time.Now().UTC()

	txs = append(txs, tx)

	if err := s.saveAll(txs); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}

	return nil, transaction.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	out := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if filter.Matches(tx) {
			out = append(out, tx)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out, nil
}

func (s *Store) UpdateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadAll()
	if err != nil {
		return err
	}

	for i, existing := range txs {
		if existing.ID == tx.ID {
			now := time.Now().UTC()
			tx.UpdatedAt = &now
			tx.CreatedAt = existing.CreatedAt
			txs[i] = tx

			if err := s.saveAll(txs); err != nil {
				return fmt.Errorf("updating transaction: %w", err)
			}

			return nil
		}
	}

	return transaction.ErrNotFound
}

func (s *Store) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadAll()
	if err != nil {
		return err
	}

	for i, existing := range txs {
		if existing.ID == id {
			txs = append(txs[:i], txs[i+1:]...)

			if err := s.saveAll(txs); err != nil {
				return fmt.Errorf("deleting transaction: %w", err)
			}

			return nil
		}
	}

	return transaction.ErrNotFound
}

// seedTransactions returns the sample ledger used on first run: rent income
// and a handful of expenses across the two seed properties.
func seedTransactions() []*transaction.Transaction {
	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	john := store.SeedTenantJohn
	jane := store.SeedTenantJane

	return []*transaction.Transaction{
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyTiara,
			TenantID:    &john,
			Type:        transaction.TypeIncome,
			Category:    "Rent",
			Amount:      250000,
			Date:        thisMonth,
			Description: "Monthly rent payment",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyTiara,
			Type:        transaction.TypeExpense,
			Category:    "Maintenance",
			Amount:      50000,
			Date:        thisMonth.AddDate(0, 0, 4),
			Description: "Plumbing repair",
			Vendor:      "ABC Plumbing",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyOceanView,
			TenantID:    &jane,
			Type:        transaction.TypeIncome,
			Category:    "Rent",
			Amount:      350000,
			Date:        thisMonth,
			Description: "Monthly rent payment",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyOceanView,
			Type:        transaction.TypeExpense,
			Category:    "Utilities",
			Amount:      30000,
			Date:        thisMonth.AddDate(0, 0, 9),
			Description: "Water and electricity",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyTiara,
			TenantID:    &john,
			Type:        transaction.TypeIncome,
			Category:    "Rent",
			Amount:      250000,
			Date:        lastMonth,
			Description: "Monthly rent payment",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			PropertyID:  store.SeedPropertyOceanView,
			TenantID:    &jane,
			Type:        transaction.TypeIncome,
			Category:    "Rent",
			Amount:      350000,
			Date:        lastMonth,
			Description: "Monthly rent payment",
			CreatedAt:   now,
		},
	}
}
