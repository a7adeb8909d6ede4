package repositories

import (
	"storefront/internal/models"
)

// CartRepository defines the interface for cart data access. GetByID and
// GetByUserID load the cart together with its lines. ClearLines reports how
// many lines were removed so checkout can detect that a concurrent checkout
// already consumed the basket.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	GetByUserID(userID string) (*models.Cart, error)
	AddLine(line *models.CartLine) error
	ClearLines(cartID string) (int64, error)
	Delete(id string) error
}
