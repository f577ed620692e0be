package tenant_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/store"
	"github.com/nirbeaver/property-management/internal/tenant"
	tenantstore "github.com/nirbeaver/property-management/internal/tenant/store"
)

func newService(t *testing.T) *tenant.Service {
	t.Helper()

	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	return tenant.NewService(tenantstore.New(db))
}

func TestCreateValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		params  tenant.CreateParams
		wantErr error
	}{
		{
			name:    "missing name",
			params:  tenant.CreateParams{Email: "sam@example.com"},
			wantErr: tenant.ErrEmptyName,
		},
		{
			name:    "missing email",
			params:  tenant.CreateParams{Name: "Sam Porter"},
			wantErr: tenant.ErrEmptyEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("defaults to active", func(t *testing.T) {
		created, err := svc.Create(ctx, tenant.CreateParams{Name: "Sam Porter", Email: "sam@example.com"})
		require.NoError(t, err)
		assert.Equal(t, tenant.StatusActive, created.Status)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})
}

func TestCRUDRoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, tenant.CreateParams{
		Name:        "Sam Porter",
		Email:       "sam@example.com",
		Phone:       "555-0101",
		MonthlyRent: 175000,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam Porter", got.Name)
	assert.Equal(t, int64(175000), got.MonthlyRent)

	got.Phone = "555-0202"
	require.NoError(t, svc.Update(ctx, got))

	updated, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0202", updated.Phone)
	assert.NotNil(t, updated.UpdatedAt)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, tenant.ErrNotFound)
}

func TestNotes(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := svc.AddNote(ctx, store.SeedTenantJohn, "   ")
		assert.ErrorIs(t, err, tenant.ErrEmptyContent)
	})

	t.Run("unknown tenant rejected", func(t *testing.T) {
		_, err := svc.AddNote(ctx, uuid.New(), "Paid rent early")
		assert.ErrorIs(t, err, tenant.ErrNotFound)
	})

	seeded, err := svc.Notes(ctx, store.SeedTenantJohn)
	require.NoError(t, err)

	first, err := svc.AddNote(ctx, store.SeedTenantJohn, "Paid rent early")
	require.NoError(t, err)

	_, err = svc.AddNote(ctx, store.SeedTenantJohn, "Requested repair")
	require.NoError(t, err)

	_, err = svc.AddNote(ctx, store.SeedTenantJane, "Other tenant's note")
	require.NoError(t, err)

	notes, err := svc.Notes(ctx, store.SeedTenantJohn)
	require.NoError(t, err)
	require.Len(t, notes, len(seeded)+2, "notes are scoped to the tenant")

	require.NoError(t, svc.DeleteNote(ctx, first.ID))

	notes, err = svc.Notes(ctx, store.SeedTenantJohn)
	require.NoError(t, err)
	assert.Len(t, notes, len(seeded)+1)

	assert.ErrorIs(t, svc.DeleteNote(ctx, first.ID), tenant.ErrNoteNotFound)
}

func TestDocuments(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	t.Run("unknown tenant rejected", func(t *testing.T) {
		err := svc.AddDocument(ctx, &tenant.Document{TenantID: uuid.New(), Name: "lease.pdf"})
		assert.ErrorIs(t, err, tenant.ErrNotFound)
	})

	doc := &tenant.Document{
		TenantID: store.SeedTenantJohn,
		Name:     "lease.pdf",
		Type:     "application/pdf",
		URL:      "http://localhost/files/tenants/lease.pdf",
		Size:     2048,
	}
	require.NoError(t, svc.AddDocument(ctx, doc))
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.False(t, doc.UploadDate.IsZero())

	docs, err := svc.Documents(ctx, store.SeedTenantJohn)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "lease.pdf", docs[0].Name)

	other, err := svc.Documents(ctx, store.SeedTenantJane)
	require.NoError(t, err)
	assert.Empty(t, other, "documents are scoped to the tenant")

	require.NoError(t, svc.DeleteDocument(ctx, doc.ID))

	docs, err = svc.Documents(ctx, store.SeedTenantJohn)
	require.NoError(t, err)
	assert.Empty(t, docs)

	assert.ErrorIs(t, svc.DeleteDocument(ctx, doc.ID), tenant.ErrDocumentNotFound)
}
