package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/bus"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   Repository
	events *bus.Bus
}

func NewService(repo Repository, events *bus.Bus) *Service {
	return &Service{repo: repo, events: events}
}

type CreateParams struct {
	PropertyID  uuid.UUID
	TenantID    *uuid.UUID
	Type        Type
	Category    string
	Amount      int64
	Date        time.Time
	Description string
	Vendor      string
}

type ListFilter struct {
	PropertyID *uuid.UUID
	Type       *Type
	StartDate  *time.Time
	EndDate    *time.Time
}

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidType   = errors.New("type must be income or expense")
	ErrEmptyCategory = errors.New("category is required")
	ErrMissingDate   = errors.New("date is required")
	ErrNoProperty    = errors.New("property is required")
)

func (p CreateParams) validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if p.Type != TypeIncome && p.Type != TypeExpense {
		return ErrInvalidType
	}

	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}

	if p.Date.IsZero() {
		return ErrMissingDate
	}

	if p.PropertyID == uuid.Nil {
		return ErrNoProperty
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		PropertyID:  params.PropertyID,
		TenantID:    params.TenantID,
		Type:        params.Type,
		Category:    params.Category,
		Amount:      params.Amount,
		Date:        params.Date,
		Description: params.Description,
		Vendor:      params.Vendor,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.publish("created", tx.ID)

	return tx, nil
}

// CreateBatch persists a batch of imported transactions, skipping entries
// that duplicate an existing record on (date, amount, type, description).
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) (created []*Transaction, skipped int, err error) {
	if len(params) == 0 {
		return nil, 0, nil
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, 0, err
		}
	}

	existing, err := s.repo.ListTransactions(ctx, ListFilter{})
	if err != nil {
		return nil, 0, err
	}

	type dupKey struct {
		Date        string
		Amount      int64
		Type        Type
		Description string
	}

	seen := make(map[dupKey]struct{}, len(existing))
	for _, tx := range existing {
		seen[dupKey{tx.Date.Format(time.DateOnly), tx.Amount, tx.Type, tx.Description}] = struct{}{}
	}

	for _, p := range params {
		k := dupKey{p.Date.Format(time.DateOnly), p.Amount, p.Type, p.Description}
		if _, found := seen[k]; found {
			skipped++
			continue
		}

		seen[k] = struct{}{}

		tx := &Transaction{
			PropertyID:  p.PropertyID,
			TenantID:    p.TenantID,
			Type:        p.Type,
			Category:    p.Category,
			Amount:      p.Amount,
			Date:        p.Date,
			Description: p.Description,
			Vendor:      p.Vendor,
		}
		if err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return nil, 0, err
		}

		created = append(created, tx)
	}

	if len(created) > 0 {
		s.publish("created", created[0].ID)
	}

	return created, skipped, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	s.publish("updated", tx.ID)

	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.publish("deleted", id)

	return nil
}

func (s *Service) publish(action string, id uuid.UUID) {
	if s.events == nil {
		return
	}

	s.events.Publish(bus.Event{Topic: bus.TopicTransactions, Action: action, ID: id.String()})
}

// Matches reports whether the transaction passes the filter.
func (f ListFilter) Matches(tx *Transaction) bool {
	if f.PropertyID != nil && tx.PropertyID != *f.PropertyID {
		return false
	}

	if f.Type != nil && tx.Type != *f.Type {
		return false
	}

	if f.StartDate != nil && tx.Date.Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && tx.Date.After(*f.EndDate) {
		return false
	}

	return true
}
