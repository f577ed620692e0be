package lease

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Repository interface {
	CreateLease(ctx context.Context, l *Lease) error
	ListLeases(ctx context.Context) ([]*Lease, error)
	DeleteLease(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var ErrInvalidDates = errors.New("end date must not be before start date")

func (s *Service) Create(ctx context.Context, l *Lease) (*Lease, error) {
	if l.EndDate.Before(l.StartDate) {
		return nil, ErrInvalidDates
	}

	if err := s.repo.CreateLease(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) List(ctx context.Context) ([]*Lease, error) {
	return s.repo.ListLeases(ctx)
}

// ForProperty returns the leases attached to the property.
func (s *Service) ForProperty(ctx context.Context, propertyID uuid.UUID) ([]*Lease, error) {
	leases, err := s.repo.ListLeases(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*Lease, 0, len(leases))

	for _, l := range leases {
		if l.PropertyID == propertyID {
			out = append(out, l)
		}
	}

	return out, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLease(ctx, id)
}
