package property_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/bus"
	"github.com/nirbeaver/property-management/internal/property"
	propertystore "github.com/nirbeaver/property-management/internal/property/store"
	"github.com/nirbeaver/property-management/internal/store"
)

func newService(t *testing.T) *property.Service {
	t.Helper()

	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	return property.NewService(propertystore.New(db), bus.New())
}

func TestCreateValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		params  property.CreateParams
		wantErr error
	}{
		{
			name:    "missing name",
			params:  property.CreateParams{Address: "1 High St"},
			wantErr: property.ErrEmptyName,
		},
		{
			name:    "missing address",
			params:  property.CreateParams{Name: "Hilltop"},
			wantErr: property.ErrEmptyAddress,
		},
		{
			name:    "negative rent",
			params:  property.CreateParams{Name: "Hilltop", Address: "1 High St", MonthlyRent: -1},
			wantErr: property.ErrInvalidRent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("defaults to vacant", func(t *testing.T) {
		p, err := svc.Create(ctx, property.CreateParams{Name: "Hilltop", Address: "1 High St"})
		require.NoError(t, err)
		assert.Equal(t, property.StatusVacant, p.Status)
	})
}

func TestArchive(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	id := store.SeedPropertyTiara

	require.NoError(t, svc.Archive(ctx, id))

	t.Run("archived is hidden from the default list", func(t *testing.T) {
		active, err := svc.List(ctx, false)
		require.NoError(t, err)

		for _, p := range active {
			assert.NotEqual(t, id, p.ID)
		}
	})

	t.Run("archived still listed when asked", func(t *testing.T) {
		all, err := svc.List(ctx, true)
		require.NoError(t, err)

		found := false
		for _, p := range all {
			if p.ID == id {
				found = true
				assert.True(t, p.Archived)
			}
		}
		assert.True(t, found)
	})

	t.Run("unarchive restores", func(t *testing.T) {
		require.NoError(t, svc.Unarchive(ctx, id))

		p, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, p.Archived)
	})
}

func TestOccupancyRate(t *testing.T) {
	p := &property.Property{Units: 10, OccupiedUnits: 8}
	assert.InDelta(t, 80, p.OccupancyRate(), 1e-9)

	empty := &property.Property{}
	assert.Zero(t, empty.OccupancyRate())
}
