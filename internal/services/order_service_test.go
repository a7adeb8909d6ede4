package services_test

import (
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkoutOrder runs a real checkout so lifecycle tests start from the same
// PENDING order the production path produces.
func checkoutOrder(t *testing.T, env *testEnv, lines map[string]int) *models.Order {
	t.Helper()

	user := env.seedUser(t, "Shopper", "shopper@example.com", "secret1", models.RoleUser)
	cart := env.seedCart(t, user.ID)
	for productID, qty := range lines {
		env.seedCartLine(t, cart.ID, productID, qty)
	}
	order, err := env.cart.Checkout(cart.ID, "X")
	require.NoError(t, err)
	return order
}

func TestOrderService_UpdateStatus_Complete(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	productA := env.seedProduct(t, "Product A", 10.0, 100)
	productB := env.seedProduct(t, "Product B", 5.0, 40)
	order := checkoutOrder(t, env, map[string]int{productA.ID: 2, productB.ID: 1})

	updated, err := env.order.UpdateStatus(admin.ID, order.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.True(t, updated.InventoryApplied)

	// Each product lost exactly its order-line quantity.
	a, err := env.products.GetByID(productA.ID)
	require.NoError(t, err)
	assert.Equal(t, 98, a.Stock)
	b, err := env.products.GetByID(productB.ID)
	require.NoError(t, err)
	assert.Equal(t, 39, b.Stock)
}

func TestOrderService_UpdateStatus_CompleteTwiceIsConflict(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 2})

	_, err := env.order.UpdateStatus(admin.ID, order.ID, models.StatusCompleted)
	require.NoError(t, err)

	// Re-issuing the transition must fail and must not decrement again.
	_, err = env.order.UpdateStatus(admin.ID, order.ID, models.StatusCompleted)
	assert.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	reloaded, err := env.products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 98, reloaded.Stock)
}

func TestOrderService_UpdateStatus_CancelHasNoInventoryEffect(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 3})

	updated, err := env.order.UpdateStatus(admin.ID, order.ID, models.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, updated.Status)
	assert.False(t, updated.InventoryApplied)

	reloaded, err := env.products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, reloaded.Stock)
}

func TestOrderService_UpdateStatus_TerminalOrderRejectsAnyTransition(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 2})

	_, err := env.order.UpdateStatus(admin.ID, order.ID, models.StatusCompleted)
	require.NoError(t, err)

	// COMPLETED → CANCELED is rejected; history stays auditable.
	_, err = env.order.UpdateStatus(admin.ID, order.ID, models.StatusCanceled)
	assert.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	reloaded, err := env.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, reloaded.Status)
}

func TestOrderService_UpdateStatus_BackToPendingIsConflict(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 1})

	_, err := env.order.UpdateStatus(admin.ID, order.ID, models.StatusPending)
	assert.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestOrderService_UpdateStatus_NonAdminIsForbidden(t *testing.T) {
	env := newTestEnv()
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 1})
	shopper, err := env.users.GetByEmail("shopper@example.com")
	require.NoError(t, err)

	_, err = env.order.UpdateStatus(shopper.ID, order.ID, models.StatusCompleted)
	assert.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	// The order is untouched regardless of its state.
	reloaded, err := env.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reloaded.Status)
}

func TestOrderService_UpdateStatus_UnknownActorIsNotFound(t *testing.T) {
	env := newTestEnv()
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 1})

	_, err := env.order.UpdateStatus("no-such-admin", order.ID, models.StatusCompleted)
	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_UpdateStatus_UnknownOrderIsNotFound(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)

	_, err := env.order.UpdateStatus(admin.ID, "no-such-order", models.StatusCompleted)
	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_UpdateStatus_StockUnderflowIsConflict(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	product := env.seedProduct(t, "Product A", 10.0, 1)
	order := checkoutOrder(t, env, map[string]int{product.ID: 2})

	_, err := env.order.UpdateStatus(admin.ID, order.ID, models.StatusCompleted)
	assert.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// Stock stays where it was; the order never reached COMPLETED.
	reloaded, err := env.products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Stock)

	pending, err := env.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, pending.Status)
	assert.False(t, pending.InventoryApplied)
}

func TestOrderService_AdminListAndDelete(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 1})

	orders, err := env.order.GetAllOrdersByAdmin(admin.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	shopper, err := env.users.GetByEmail("shopper@example.com")
	require.NoError(t, err)
	_, err = env.order.GetAllOrdersByAdmin(shopper.ID)
	assert.True(t, apperrors.IsForbidden(err))

	require.NoError(t, env.order.DeleteOrderByAdmin(admin.ID, order.ID))
	_, err = env.order.GetOrderByID(order.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_UpdateAddressByAdmin(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	product := env.seedProduct(t, "Product A", 10.0, 100)
	order := checkoutOrder(t, env, map[string]int{product.ID: 1})

	updated, err := env.order.UpdateAddressByAdmin(admin.ID, order.ID, "New Street 7")
	require.NoError(t, err)
	assert.Equal(t, "New Street 7", updated.Address)
	// The address path never touches the status.
	assert.Equal(t, models.StatusPending, updated.Status)
}
