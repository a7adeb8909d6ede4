package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
// TransitionStatus performs the conditional status write: it updates the
// order only while its status still equals from, setting the new status and
// the inventory-applied marker in the same write, and reports how many rows
// changed. A zero count means another transition won the race.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateAddress(id string, address string) (*models.Order, error)
	Delete(id string) error
	TransitionStatus(id string, from, to models.OrderStatus, inventoryApplied bool) (int64, error)
	CountByStatus(status models.OrderStatus) (int64, error)
	SumTotalByStatus(status models.OrderStatus) (float64, error)
}
