package repositories

import (
	"sync"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart
	lines map[string][]models.CartLine // keyed by cart ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
		lines: make(map[string][]models.CartLine),
	}
}

// Create adds a new cart.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.ID] = *cart
	r.lines[cart.ID] = append([]models.CartLine(nil), cart.Lines...)
	return nil
}

// GetByID returns a cart with its lines by the cart's ID.
func (r *MockCartRepository) GetByID(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, apperrors.NotFound("cart with ID %s not found", id)
	}
	cart.Lines = append([]models.CartLine(nil), r.lines[id]...)
	return &cart, nil
}

// GetByUserID returns the open cart of the given account with its lines.
func (r *MockCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cart := range r.carts {
		if cart.UserID == userID {
			cart.Lines = append([]models.CartLine(nil), r.lines[cart.ID]...)
			return &cart, nil
		}
	}
	return nil, apperrors.NotFound("cart for user %s not found", userID)
}

// AddLine appends a new line row to a cart.
func (r *MockCartRepository) AddLine(line *models.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	r.lines[line.CartID] = append(r.lines[line.CartID], *line)
	return nil
}

// ClearLines removes all lines of a cart and reports how many were removed.
func (r *MockCartRepository) ClearLines(cartID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := int64(len(r.lines[cartID]))
	r.lines[cartID] = nil
	return removed, nil
}

// Delete removes a cart by its ID.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return apperrors.NotFound("cart with ID %s not found for deletion", id)
	}
	delete(r.carts, id)
	delete(r.lines, id)
	return nil
}
