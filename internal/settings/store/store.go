// Package store persists the settings records in the record store.
package store

import (
	"context"
	"errors"

	"github.com/nirbeaver/property-management/internal/settings"
	"github.com/nirbeaver/property-management/internal/store"
)

type Store struct {
	db *store.Store
}

func New(db *store.Store) *Store {
	return &Store{db: db}
}

func (s *Store) load(collection string, v any) error {
	err := s.db.Load(collection, v)
	if errors.Is(err, store.ErrNotFound) {
		return settings.ErrNotSet
	}

	return err
}

func (s *Store) GetUserProfile(_ context.Context) (*settings.UserProfile, error) {
	var p settings.UserProfile
	if err := s.load(store.CollectionUserProfile, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) SaveUserProfile(_ context.Context, p *settings.UserProfile) error {
	return s.db.Save(store.CollectionUserProfile, p)
}

func (s *Store) GetCompanySettings(_ context.Context) (*settings.CompanySettings, error) {
	var c settings.CompanySettings
	if err := s.load(store.CollectionCompanySettings, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) SaveCompanySettings(_ context.Context, c *settings.CompanySettings) error {
	return s.db.Save(store.CollectionCompanySettings, c)
}

func (s *Store) GetAppSettings(_ context.Context) (*settings.AppSettings, error) {
	var a settings.AppSettings
	if err := s.load(store.CollectionAppSettings, &a); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Store) SaveAppSettings(_ context.Context, a *settings.AppSettings) error {
	return s.db.Save(store.CollectionAppSettings, a)
}
