package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/bus"
	"github.com/nirbeaver/property-management/internal/lease"
	leasestore "github.com/nirbeaver/property-management/internal/lease/store"
	"github.com/nirbeaver/property-management/internal/notify"
	notifystore "github.com/nirbeaver/property-management/internal/notify/store"
	"github.com/nirbeaver/property-management/internal/store"
	"github.com/nirbeaver/property-management/internal/tenant"
	tenantstore "github.com/nirbeaver/property-management/internal/tenant/store"
)

type fixture struct {
	notifications *notify.Service
	leases        *lease.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	leases := lease.NewService(leasestore.New(db))
	tenants := tenant.NewService(tenantstore.New(db))

	return fixture{
		notifications: notify.NewService(notifystore.New(db), leases, tenants, bus.New()),
		leases:        leases,
	}
}

func TestFeed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.notifications.Add(ctx, "Welcome", "Feed is live", notify.TypeInfo, nil)
	require.NoError(t, err)

	_, err = f.notifications.Add(ctx, "Heads up", "Rent due", notify.TypeWarning, nil)
	require.NoError(t, err)

	count, err := f.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, f.notifications.MarkRead(ctx, first.ID))

	count, err = f.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, f.notifications.MarkAllRead(ctx))

	count, err = f.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, f.notifications.Clear(ctx))

	all, err := f.notifications.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAddWithoutBus(t *testing.T) {
	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	svc := notify.NewService(notifystore.New(db),
		lease.NewService(leasestore.New(db)),
		tenant.NewService(tenantstore.New(db)),
		nil)

	n, err := svc.Add(context.Background(), "Quiet", "No bus attached", notify.TypeInfo, nil)
	require.NoError(t, err)
	assert.Equal(t, "Quiet", n.Title)
}

func TestMarkReadUnknown(t *testing.T) {
	f := newFixture(t)

	err := f.notifications.MarkRead(context.Background(), store.SeedTenantJohn)
	assert.ErrorIs(t, err, notify.ErrNotFound)
}

func TestCheckLeaseExpirations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()

	_, err := f.leases.Create(ctx, &lease.Lease{
		PropertyID:  store.SeedPropertyTiara,
		TenantID:    store.SeedTenantJohn,
		Unit:        "2B",
		MonthlyRent: 250000,
		StartDate:   now.AddDate(-1, 0, 0),
		EndDate:     now.AddDate(0, 0, 10),
	})
	require.NoError(t, err)

	require.NoError(t, f.notifications.CheckLeaseExpirations(ctx, now))

	all, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, notify.TypeWarning, all[0].Type)
	assert.Contains(t, all[0].Message, "John Doe")
	assert.Contains(t, all[0].Message, "10 days")

	t.Run("re-running does not duplicate", func(t *testing.T) {
		require.NoError(t, f.notifications.CheckLeaseExpirations(ctx, now))

		all, err := f.notifications.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
