package property

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/bus"
)

type Repository interface {
	CreateProperty(ctx context.Context, p *Property) error
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	UpdateProperty(ctx context.Context, p *Property) error
	ListProperties(ctx context.Context) ([]*Property, error)
}

type Service struct {
	repo   Repository
	events *bus.Bus
}

func NewService(repo Repository, events *bus.Bus) *Service {
	return &Service{repo: repo, events: events}
}

type CreateParams struct {
	Name          string
	Address       string
	Type          string
	Status        Status
	MonthlyRent   int64
	Bedrooms      int
	Bathrooms     int
	SquareFeet    int
	Description   string
	Units         int
	OccupiedUnits int
}

var (
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyAddress = errors.New("address is required")
	ErrInvalidRent  = errors.New("monthly rent cannot be negative")
)

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(p.Address) == "" {
		return ErrEmptyAddress
	}

	if p.MonthlyRent < 0 {
		return ErrInvalidRent
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Property, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = StatusVacant
	}

	p := &Property{
		Name:          params.Name,
		Address:       params.Address,
		Type:          params.Type,
		Status:        status,
		MonthlyRent:   params.MonthlyRent,
		Bedrooms:      params.Bedrooms,
		Bathrooms:     params.Bathrooms,
		SquareFeet:    params.SquareFeet,
		Description:   params.Description,
		Units:         params.Units,
		OccupiedUnits: params.OccupiedUnits,
	}
	if err := s.repo.CreateProperty(ctx, p); err != nil {
		return nil, err
	}

	s.publish("created", p.ID)

	return p, nil
}

// List returns all properties; archived ones are filtered out unless
// includeArchived is set.
func (s *Service) List(ctx context.Context, includeArchived bool) ([]*Property, error) {
	props, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}

	if includeArchived {
		return props, nil
	}

	active := make([]*Property, 0, len(props))

	for _, p := range props {
		if !p.Archived {
			active = append(active, p)
		}
	}

	return active, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Property, error) {
	return s.repo.GetProperty(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Property) error {
	if err := s.repo.UpdateProperty(ctx, p); err != nil {
		return err
	}

	s.publish("updated", p.ID)

	return nil
}

// Archive marks the property archived. Historical transactions referencing
// it stay in the ledger untouched.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) error {
	return s.setArchived(ctx, id, true)
}

// Unarchive restores an archived property.
func (s *Service) Unarchive(ctx context.Context, id uuid.UUID) error {
	return s.setArchived(ctx, id, false)
}

func (s *Service) setArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	p, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return err
	}

	p.Archived = archived

	if err := s.repo.UpdateProperty(ctx, p); err != nil {
		return err
	}

	s.publish("updated", id)

	return nil
}

func (s *Service) publish(action string, id uuid.UUID) {
	if s.events == nil {
		return
	}

	s.events.Publish(bus.Event{Topic: bus.TopicProperties, Action: action, ID: id.String()})
}
