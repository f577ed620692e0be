package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/settings"
	settingsStore "github.com/nirbeaver/property-management/internal/settings/store"
	"github.com/nirbeaver/property-management/internal/store"
)

func newService(t *testing.T) *settings.Service {
	t.Helper()

	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	return settings.NewService(settingsStore.New(db))
}

func TestDefaults(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.Name)

	company, err := svc.Company(ctx)
	require.NoError(t, err)
	assert.Empty(t, company.Name)

	app, err := svc.App(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", app.Currency)
	assert.Equal(t, "MM/DD/YYYY", app.DateFormat)
	assert.Equal(t, "light", app.Theme)
	assert.False(t, app.EmailNotifications)
}

func TestUpdateRoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	err := svc.UpdateProfile(ctx, &settings.UserProfile{Name: "Sam Porter", Email: "sam@example.com"})
	require.NoError(t, err)

	err = svc.UpdateCompany(ctx, &settings.CompanySettings{Name: "Porter Properties LLC", TaxID: "12-3456789"})
	require.NoError(t, err)

	err = svc.UpdateApp(ctx, &settings.AppSettings{Currency: "EUR", DateFormat: "DD/MM/YYYY", Theme: "dark"})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sam Porter", profile.Name)
	assert.Equal(t, "sam@example.com", profile.Email)

	company, err := svc.Company(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Porter Properties LLC", company.Name)

	app, err := svc.App(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", app.Currency)
	assert.Equal(t, "dark", app.Theme)
}

func TestUpdateValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	err := svc.UpdateProfile(ctx, &settings.UserProfile{Name: "  "})
	assert.ErrorIs(t, err, settings.ErrEmptyName)

	err = svc.UpdateCompany(ctx, &settings.CompanySettings{})
	assert.ErrorIs(t, err, settings.ErrEmptyName)

	err = svc.UpdateApp(ctx, &settings.AppSettings{})
	assert.ErrorIs(t, err, settings.ErrEmptyCurrency)
}
