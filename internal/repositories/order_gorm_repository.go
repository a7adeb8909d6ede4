package repositories

import (
	"fmt"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their lines from the database.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Lines").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its lines by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUserID retrieves all orders of one account with their lines.
func (r *GORMOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Lines").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// Create creates a new order and its lines in the database.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Lines {
		if order.Lines[i].ID == "" {
			order.Lines[i].ID = uuid.New().String()
		}
		order.Lines[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateAddress updates the delivery address of an order. Status is out of
// reach here; only TransitionStatus may touch it.
func (r *GORMOrderRepository) UpdateAddress(id string, address string) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("address", address)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("order with ID %s not found for update", id)
	}
	return r.GetByID(id)
}

// Delete deletes an order by its ID from the database.
func (r *GORMOrderRepository) Delete(id string) error {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("order with ID %s not found for deletion", id)
	}
	return nil
}

// TransitionStatus flips an order's status from one state to another with a
// single conditional UPDATE, writing the inventory-applied marker in the
// same statement. The returned row count is zero when the order no longer
// carries the expected from status, which is how a losing concurrent
// transition finds out.
func (r *GORMOrderRepository) TransitionStatus(id string, from, to models.OrderStatus, inventoryApplied bool) (int64, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":            to,
			"inventory_applied": inventoryApplied,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to transition order %s to %s: %w", id, to, res.Error)
	}
	return res.RowsAffected, nil
}

// CountByStatus counts the orders currently in the given status.
func (r *GORMOrderRepository) CountByStatus(status models.OrderStatus) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders with status %s: %w", status, err)
	}
	return count, nil
}

// SumTotalByStatus sums the frozen totals of all orders in the given status.
func (r *GORMOrderRepository) SumTotalByStatus(status models.OrderStatus) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum order totals with status %s: %w", status, err)
	}
	return sum, nil
}
