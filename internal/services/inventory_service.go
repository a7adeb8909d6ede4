package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// InventoryService owns the product stock ledger. All stock mutations in
// the system flow through its decrement primitives; a decrement that would
// drive stock negative is rejected with a Conflict instead of applied.
type InventoryService struct {
	uow repositories.UnitOfWork
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(uow repositories.UnitOfWork) *InventoryService {
	return &InventoryService{
		uow: uow,
	}
}

// Decrement atomically reduces one product's stock counter.
func (s *InventoryService) Decrement(productID string, quantity int) error {
	return s.uow.Execute(func(r repositories.RepositorySet) error {
		return r.Products.DecrementStock(productID, quantity)
	})
}

// ApplyOrderLines decrements stock for every line of an order using the
// given transaction-bound product repository. Called once per order, from
// inside the completion transaction, so the decrements commit or roll back
// together with the status write.
func (s *InventoryService) ApplyOrderLines(products repositories.ProductRepository, lines []models.OrderLine) error {
	for _, line := range lines {
		if err := products.DecrementStock(line.ProductID, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}
