package repositories

import (
	"fmt"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create creates a new cart in the database.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// GetByID retrieves a cart with its lines by the cart's ID.
func (r *GORMCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Lines").First(&cart, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("cart with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get cart by ID %s: %w", id, err)
	}
	return &cart, nil
}

// GetByUserID retrieves the open cart of the given account with its lines.
func (r *GORMCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Lines").First(&cart, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("cart for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// AddLine appends a new line row to a cart. Duplicate product lines are
// allowed; each call inserts a fresh row.
func (r *GORMCartRepository) AddLine(line *models.CartLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	if err := r.db.Create(line).Error; err != nil {
		return fmt.Errorf("failed to add cart line: %w", err)
	}
	return nil
}

// ClearLines deletes all lines of a cart and reports how many rows were
// removed. A zero count tells the caller the basket was already empty.
func (r *GORMCartRepository) ClearLines(cartID string) (int64, error) {
	res := r.db.Delete(&models.CartLine{}, "cart_id = ?", cartID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear lines of cart %s: %w", cartID, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete deletes a cart by its ID from the database.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.Cart{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("cart with ID %s not found for deletion", id)
	}
	return nil
}
