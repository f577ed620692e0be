package tenant

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Repository interface {
	CreateTenant(ctx context.Context, t *Tenant) error
	GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error)
	UpdateTenant(ctx context.Context, t *Tenant) error
	ListTenants(ctx context.Context) ([]*Tenant, error)
	DeleteTenant(ctx context.Context, id uuid.UUID) error

	CreateNote(ctx context.Context, n *Note) error
	ListNotes(ctx context.Context, tenantID uuid.UUID) ([]*Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error

	CreateDocument(ctx context.Context, d *Document) error
	ListDocuments(ctx context.Context, tenantID uuid.UUID) ([]*Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Email       string
	Phone       string
	PropertyID  *uuid.UUID
	UnitNumber  string
	MonthlyRent int64
	Deposit     int64
}

var (
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyEmail   = errors.New("email is required")
	ErrEmptyContent = errors.New("note content is required")
)

func (s *Service) Create(ctx context.Context, params CreateParams) (*Tenant, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrEmptyName
	}

	if strings.TrimSpace(params.Email) == "" {
		return nil, ErrEmptyEmail
	}

	t := &Tenant{
		Name:        params.Name,
		Email:       params.Email,
		Phone:       params.Phone,
		Status:      StatusActive,
		PropertyID:  params.PropertyID,
		UnitNumber:  params.UnitNumber,
		MonthlyRent: params.MonthlyRent,
		Deposit:     params.Deposit,
	}
	if err := s.repo.CreateTenant(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) List(ctx context.Context) ([]*Tenant, error) {
	return s.repo.ListTenants(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	return s.repo.GetTenant(ctx, id)
}

func (s *Service) Update(ctx context.Context, t *Tenant) error {
	return s.repo.UpdateTenant(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTenant(ctx, id)
}

func (s *Service) AddNote(ctx context.Context, tenantID uuid.UUID, content string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.repo.GetTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	n := &Note{TenantID: tenantID, Content: content}
	if err := s.repo.CreateNote(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) Notes(ctx context.Context, tenantID uuid.UUID) ([]*Note, error) {
	return s.repo.ListNotes(ctx, tenantID)
}

func (s *Service) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteNote(ctx, id)
}

func (s *Service) AddDocument(ctx context.Context, d *Document) error {
	if _, err := s.repo.GetTenant(ctx, d.TenantID); err != nil {
		return err
	}

	return s.repo.CreateDocument(ctx, d)
}

func (s *Service) Documents(ctx context.Context, tenantID uuid.UUID) ([]*Document, error) {
	return s.repo.ListDocuments(ctx, tenantID)
}

func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDocument(ctx, id)
}
