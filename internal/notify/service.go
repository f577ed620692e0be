package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/bus"
	"github.com/nirbeaver/property-management/internal/lease"
	"github.com/nirbeaver/property-management/internal/tenant"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=notify

// Repository persists the notification feed.
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context) ([]*Notification, error)
	UpdateNotification(ctx context.Context, n *Notification) error
	DeleteAllNotifications(ctx context.Context) error
}

// Service manages the feed and runs the lease-expiry check.
type Service struct {
	repo    Repository
	leases  *lease.Service
	tenants *tenant.Service
	events  *bus.Bus
}

// NewService creates a new notification service.
func NewService(repo Repository, leases *lease.Service, tenants *tenant.Service, events *bus.Bus) *Service {
	return &Service{
		repo:    repo,
		leases:  leases,
		tenants: tenants,
		events:  events,
	}
}

// Add appends a notification to the feed.
func (s *Service) Add(ctx context.Context, title, message string, typ Type, relatedID *uuid.UUID) (*Notification, error) {
	n := &Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      typ,
		RelatedID: relatedID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	s.publish("created", n.ID)

	return n, nil
}

func (s *Service) publish(action string, id uuid.UUID) {
	if s.events == nil {
		return
	}

	s.events.Publish(bus.Event{Topic: bus.TopicNotifications, Action: action, ID: id.String()})
}

// List returns the feed, newest first.
func (s *Service) List(ctx context.Context) ([]*Notification, error) {
	return s.repo.ListNotifications(ctx)
}

// UnreadCount reports how many notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, n := range all {
		if !n.Read {
			count++
		}
	}

	return count, nil
}

// MarkRead marks one notification as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	all, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return err
	}

	for _, n := range all {
		if n.ID == id {
			n.Read = true

			return s.repo.UpdateNotification(ctx, n)
		}
	}

	return ErrNotFound
}

// MarkAllRead marks the whole feed as read.
func (s *Service) MarkAllRead(ctx context.Context) error {
	all, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return err
	}

	for _, n := range all {
		if n.Read {
			continue
		}

		n.Read = true

		if err := s.repo.UpdateNotification(ctx, n); err != nil {
			return err
		}
	}

	return nil
}

// Clear removes every notification.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.DeleteAllNotifications(ctx)
}

// expiryWindow is how far ahead the lease check warns.
const expiryWindow = 30 * 24 * time.Hour

// CheckLeaseExpirations appends a warning for every lease ending within
// the next thirty days. A lease that already has a warning in the feed is
// skipped, so the check is safe to run on every startup.
func (s *Service) CheckLeaseExpirations(ctx context.Context, now time.Time) error {
	leases, err := s.leases.List(ctx)
	if err != nil {
		return fmt.Errorf("listing leases: %w", err)
	}

	existing, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("listing notifications: %w", err)
	}

	notified := make(map[uuid.UUID]bool, len(existing))

	for _, n := range existing {
		if n.RelatedID != nil {
			notified[*n.RelatedID] = true
		}
	}

	for _, l := range leases {
		if notified[l.ID] {
			continue
		}

		if l.EndDate.Before(now) || l.EndDate.After(now.Add(expiryWindow)) {
			continue
		}

		days := int(l.EndDate.Sub(now).Hours() / 24)

		name := "A tenant"
		if t, err := s.tenants.Get(ctx, l.TenantID); err == nil {
			name = t.Name
		}

		id := l.ID

		message := fmt.Sprintf("%s's lease expires in %d days", name, days)
		if _, err := s.Add(ctx, "Lease Expiring Soon", message, TypeWarning, &id); err != nil {
			return err
		}
	}

	return nil
}
