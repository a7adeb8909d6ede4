package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires every service against the in-memory mock repositories, the
// way main wires them against GORM.
type testEnv struct {
	users     *repositories.MockUserRepository
	products  *repositories.MockProductRepository
	carts     *repositories.MockCartRepository
	orders    *repositories.MockOrderRepository
	auth      *services.AuthService
	inventory *services.InventoryService
	cart      *services.CartService
	order     *services.OrderService
	dashboard *services.DashboardService
}

func newTestEnv() *testEnv {
	users := repositories.NewMockUserRepository()
	products := repositories.NewMockProductRepository()
	carts := repositories.NewMockCartRepository()
	orders := repositories.NewMockOrderRepository()

	uow := repositories.NewMockUnitOfWork(repositories.RepositorySet{
		Users:    users,
		Products: products,
		Carts:    carts,
		Orders:   orders,
	})

	auth := services.NewAuthService(users, carts, "test_jwt_secret")
	inventory := services.NewInventoryService(uow)

	return &testEnv{
		users:     users,
		products:  products,
		carts:     carts,
		orders:    orders,
		auth:      auth,
		inventory: inventory,
		cart:      services.NewCartService(uow, carts, products, nil),
		order:     services.NewOrderService(uow, orders, auth, inventory, nil),
		dashboard: services.NewDashboardService(users, orders, auth),
	}
}

// seedUser stores a user with a bcrypt-hashed password and returns it.
func (e *testEnv) seedUser(t *testing.T, name, email, password string, role models.Role) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, e.users.Create(user))
	return user
}

// seedProduct stores a product and returns it.
func (e *testEnv) seedProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:  name,
		Price: price,
		Stock: stock,
	}
	require.NoError(t, e.products.Create(product))
	return product
}

// seedCart stores an open cart for the given account and returns it.
func (e *testEnv) seedCart(t *testing.T, userID string) *models.Cart {
	t.Helper()

	cart := &models.Cart{UserID: userID}
	require.NoError(t, e.carts.Create(cart))
	return cart
}

// seedCartLine appends a line to a cart.
func (e *testEnv) seedCartLine(t *testing.T, cartID, productID string, quantity int) {
	t.Helper()

	require.NoError(t, e.carts.AddLine(&models.CartLine{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}))
}
