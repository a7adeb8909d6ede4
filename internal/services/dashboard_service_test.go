package services_test

import (
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Snapshot(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	env.seedUser(t, "Shopper One", "one@example.com", "secret1", models.RoleUser)
	env.seedUser(t, "Shopper Two", "two@example.com", "secret1", models.RoleUser)

	require.NoError(t, env.orders.Create(&models.Order{Total: 25.0, Status: models.StatusCompleted}))
	require.NoError(t, env.orders.Create(&models.Order{Total: 75.0, Status: models.StatusCompleted}))
	require.NoError(t, env.orders.Create(&models.Order{Total: 10.0, Status: models.StatusPending}))
	require.NoError(t, env.orders.Create(&models.Order{Total: 99.0, Status: models.StatusCanceled}))

	snapshot, err := env.dashboard.Snapshot(admin.ID)
	require.NoError(t, err)

	// Admins are not counted as shoppers; canceled orders never count as sales.
	assert.Equal(t, int64(2), snapshot.TotalUsers)
	assert.Equal(t, int64(2), snapshot.TotalOrdersCompleted)
	assert.Equal(t, int64(1), snapshot.TotalOrdersPending)
	assert.Equal(t, 100.0, snapshot.TotalSales)
}

func TestDashboardService_Snapshot_NonAdminIsForbidden(t *testing.T) {
	env := newTestEnv()
	shopper := env.seedUser(t, "Shopper", "shopper@example.com", "secret1", models.RoleUser)

	_, err := env.dashboard.Snapshot(shopper.ID)
	assert.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestDashboardService_Snapshot_UnknownActorIsNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.dashboard.Snapshot("no-such-user")
	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
