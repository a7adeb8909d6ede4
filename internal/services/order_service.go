package services

import (
	"encoding/json"
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderService owns the order state machine: PENDING is the only initial
// state, COMPLETED and CANCELED are terminal, and completing an order
// applies the inventory decrements exactly once.
type OrderService struct {
	uow       repositories.UnitOfWork
	orderRepo repositories.OrderRepository
	auth      *AuthService
	inventory *InventoryService
	mqClient  EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(uow repositories.UnitOfWork, orderRepo repositories.OrderRepository, auth *AuthService, inventory *InventoryService, mqClient EventPublisher) *OrderService {
	return &OrderService{
		uow:       uow,
		orderRepo: orderRepo,
		auth:      auth,
		inventory: inventory,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order with its lines.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByUserID retrieves all orders of one account.
func (s *OrderService) GetOrdersByUserID(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetAllOrdersByAdmin lists every order for an administrator.
func (s *OrderService) GetAllOrdersByAdmin(adminID string) ([]models.Order, error) {
	if _, err := s.auth.RequireAdmin(adminID); err != nil {
		return nil, err
	}
	return s.orderRepo.GetAll()
}

// UpdateAddressByAdmin changes an order's delivery address. Status is not
// reachable through this path; UpdateStatus is the only status mutator.
func (s *OrderService) UpdateAddressByAdmin(adminID, orderID, address string) (*models.Order, error) {
	if _, err := s.auth.RequireAdmin(adminID); err != nil {
		return nil, err
	}
	return s.orderRepo.UpdateAddress(orderID, address)
}

// DeleteOrderByAdmin removes an order record entirely.
func (s *OrderService) DeleteOrderByAdmin(adminID, orderID string) error {
	if _, err := s.auth.RequireAdmin(adminID); err != nil {
		return err
	}
	return s.orderRepo.Delete(orderID)
}

// UpdateStatus transitions an order out of PENDING. Only admins may call
// it; a terminal order yields a Conflict, never a silent no-op, so order
// history stays auditable. On the transition to COMPLETED every line's
// stock decrement and the status write commit as one transaction, and the
// conditional status write guarantees a retried or concurrent call cannot
// decrement twice. CANCELED has no inventory effect.
func (s *OrderService) UpdateStatus(adminID, orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if _, err := s.auth.RequireAdmin(adminID); err != nil {
		return nil, err
	}
	if !newStatus.Valid() {
		return nil, apperrors.Conflict("invalid order status: %s", newStatus)
	}
	if newStatus == models.StatusPending {
		return nil, apperrors.Conflict("order status cannot be set back to %s", models.StatusPending)
	}

	var updated *models.Order
	err := s.uow.Execute(func(r repositories.RepositorySet) error {
		order, err := r.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return apperrors.Conflict("order %s is already %s and cannot change status", orderID, order.Status)
		}

		if newStatus == models.StatusCompleted {
			if err := s.inventory.ApplyOrderLines(r.Products, order.Lines); err != nil {
				return err
			}
		}

		rows, err := r.Orders.TransitionStatus(orderID, models.StatusPending, newStatus, newStatus == models.StatusCompleted)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race against a concurrent transition.
			return apperrors.Conflict("order %s is no longer %s and cannot change status", orderID, models.StatusPending)
		}

		updated, err = r.Orders.GetByID(orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusUpdated(updated)

	return updated, nil
}

// publishStatusUpdated emits the order.status_updated event, best effort.
func (s *OrderService) publishStatusUpdated(order *models.Order) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order status event to JSON: %v", err)
		return
	}
	if err := s.mqClient.Publish("order", "order.status_updated", body); err != nil {
		log.Printf("Warning: Failed to publish status update event for order %s: %v", order.ID, err)
	}
}
