package settings

import (
	"context"
	"errors"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings

// Repository persists the settings collections. Each getter returns
// ErrNotSet when the record has never been saved.
type Repository interface {
	GetUserProfile(ctx context.Context) (*UserProfile, error)
	SaveUserProfile(ctx context.Context, p *UserProfile) error
	GetCompanySettings(ctx context.Context) (*CompanySettings, error)
	SaveCompanySettings(ctx context.Context, c *CompanySettings) error
	GetAppSettings(ctx context.Context) (*AppSettings, error)
	SaveAppSettings(ctx context.Context, a *AppSettings) error
}

// ErrNotSet is returned by the repository when a settings record has never
// been saved. The service translates it into defaults.
var ErrNotSet = errors.New("settings not set")

var (
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyCurrency = errors.New("currency is required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Profile returns the stored user profile, or an empty one if never saved.
func (s *Service) Profile(ctx context.Context) (*UserProfile, error) {
	p, err := s.repo.GetUserProfile(ctx)
	if errors.Is(err, ErrNotSet) {
		return &UserProfile{}, nil
	}

	return p, err
}

func (s *Service) UpdateProfile(ctx context.Context, p *UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	return s.repo.SaveUserProfile(ctx, p)
}

// Company returns the stored company details, or an empty record if never saved.
func (s *Service) Company(ctx context.Context) (*CompanySettings, error) {
	c, err := s.repo.GetCompanySettings(ctx)
	if errors.Is(err, ErrNotSet) {
		return &CompanySettings{}, nil
	}

	return c, err
}

func (s *Service) UpdateCompany(ctx context.Context, c *CompanySettings) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}

	return s.repo.SaveCompanySettings(ctx, c)
}

// App returns the stored preferences, falling back to defaults.
func (s *Service) App(ctx context.Context) (*AppSettings, error) {
	a, err := s.repo.GetAppSettings(ctx)
	if errors.Is(err, ErrNotSet) {
		defaults := DefaultAppSettings()
		return &defaults, nil
	}

	return a, err
}

func (s *Service) UpdateApp(ctx context.Context, a *AppSettings) error {
	if strings.TrimSpace(a.Currency) == "" {
		return ErrEmptyCurrency
	}

	return s.repo.SaveAppSettings(ctx, a)
}
