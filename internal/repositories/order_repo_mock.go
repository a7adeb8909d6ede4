package repositories

import (
	"sync"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order with ID %s not found", id)
	}
	return &order, nil
}

// GetByUserID returns all orders of one account.
func (r *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orderList []models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Lines {
		if order.Lines[i].ID == "" {
			order.Lines[i].ID = uuid.New().String()
		}
		order.Lines[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	return nil
}

// UpdateAddress changes the delivery address of an order.
func (r *MockOrderRepository) UpdateAddress(id string, address string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order with ID %s not found for update", id)
	}
	order.Address = address
	r.orders[id] = order
	return &order, nil
}

// Delete removes an order by its ID.
func (r *MockOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return apperrors.NotFound("order with ID %s not found for deletion", id)
	}
	delete(r.orders, id)
	return nil
}

// TransitionStatus flips the status only if it still equals from, mirroring
// the conditional UPDATE of the GORM implementation.
func (r *MockOrderRepository) TransitionStatus(id string, from, to models.OrderStatus, inventoryApplied bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.Status != from {
		return 0, nil
	}
	order.Status = to
	order.InventoryApplied = inventoryApplied
	r.orders[id] = order
	return 1, nil
}

// CountByStatus counts the orders in the given status.
func (r *MockOrderRepository) CountByStatus(status models.OrderStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, order := range r.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

// SumTotalByStatus sums the totals of the orders in the given status.
func (r *MockOrderRepository) SumTotalByStatus(status models.OrderStatus) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum float64
	for _, order := range r.orders {
		if order.Status == status {
			sum += order.Total
		}
	}
	return sum, nil
}
