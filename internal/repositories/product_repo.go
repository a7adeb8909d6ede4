package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
// DecrementStock is the only operation that mutates a product's stock
// counter; it must reject any decrement that would drive stock negative.
type ProductRepository interface {
	GetAll(categoryID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	DecrementStock(id string, quantity int) error
}
