package services_test

import (
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterUser_CreatesCartForShopper(t *testing.T) {
	env := newTestEnv()

	user := &models.User{
		Name:     "Shopper",
		Email:    "shopper@example.com",
		Password: "secret1",
	}
	require.NoError(t, env.auth.RegisterUser(user))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.Password) // stored hashed

	// A USER account owns exactly one open cart from registration on.
	cart, err := env.carts.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestAuthService_RegisterUser_AdminGetsNoCart(t *testing.T) {
	env := newTestEnv()

	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secret1",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, env.auth.RegisterUser(admin))

	_, err := env.carts.GetByUserID(admin.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "First", "taken@example.com", "secret1", models.RoleUser)

	err := env.auth.RegisterUser(&models.User{
		Name:     "Second",
		Email:    "taken@example.com",
		Password: "secret2",
	})
	assert.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuthService_LoginUser(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.auth.RegisterUser(&models.User{
		Name:     "Shopper",
		Email:    "shopper@example.com",
		Password: "secret1",
	}))

	token, user, err := env.auth.LoginUser("shopper@example.com", "secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user)

	claims, err := env.auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, string(models.RoleUser), claims["role"])
}

func TestAuthService_LoginUser_InvalidCredentials(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.auth.RegisterUser(&models.User{
		Name:     "Shopper",
		Email:    "shopper@example.com",
		Password: "secret1",
	}))

	_, _, err := env.auth.LoginUser("shopper@example.com", "wrong-password")
	assert.Error(t, err)

	_, _, err = env.auth.LoginUser("nobody@example.com", "secret1")
	assert.Error(t, err)
}

func TestAuthService_RequireAdmin(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	shopper := env.seedUser(t, "Shopper", "shopper@example.com", "secret1", models.RoleUser)

	// Known admin: returns the record for reuse.
	actor, err := env.auth.RequireAdmin(admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, admin.ID, actor.ID)

	// Known non-admin: Forbidden.
	_, err = env.auth.RequireAdmin(shopper.ID)
	assert.True(t, apperrors.IsForbidden(err))

	// Unknown actor: NotFound.
	_, err = env.auth.RequireAdmin("no-such-user")
	assert.True(t, apperrors.IsNotFound(err))
}
