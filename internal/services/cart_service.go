package services

import (
	"encoding/json"
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic for the pre-purchase basket: line
// mutation and the checkout that converts a cart into an order.
type CartService struct {
	uow         repositories.UnitOfWork
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	mqClient    EventPublisher
}

// NewCartService creates a new CartService.
func NewCartService(uow repositories.UnitOfWork, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, mqClient EventPublisher) *CartService {
	return &CartService{
		uow:         uow,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// GetCartByID retrieves a cart with its lines.
func (s *CartService) GetCartByID(id string) (*models.Cart, error) {
	return s.cartRepo.GetByID(id)
}

// GetCartByUserID retrieves the open cart of an account with its lines.
func (s *CartService) GetCartByUserID(userID string) (*models.Cart, error) {
	return s.cartRepo.GetByUserID(userID)
}

// AddLine appends a product line to the owner's open cart. There is no
// stock check at add time and no merging of repeated products; adding the
// same product twice yields two lines.
func (s *CartService) AddLine(ownerID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperrors.Conflict("quantity must be at least 1 (got %d)", quantity)
	}

	cart, err := s.cartRepo.GetByUserID(ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	line := &models.CartLine{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.AddLine(line); err != nil {
		return nil, err
	}

	return s.cartRepo.GetByID(cart.ID)
}

// Checkout converts the cart's lines into a new PENDING order and empties
// the cart, all in one transaction. Each order line freezes the product's
// current catalog price; later price changes never touch the order. An
// empty cart is rejected with a Conflict, and of two concurrent checkouts
// on the same cart only one can win: the loser finds the lines already
// cleared and gets the same Conflict.
func (s *CartService) Checkout(cartID, address string) (*models.Order, error) {
	var order *models.Order

	err := s.uow.Execute(func(r repositories.RepositorySet) error {
		cart, err := r.Carts.GetByID(cartID)
		if err != nil {
			return err
		}
		if len(cart.Lines) == 0 {
			return apperrors.Conflict("cart %s is empty, nothing to check out", cartID)
		}

		var total float64
		orderLines := make([]models.OrderLine, 0, len(cart.Lines))
		for _, line := range cart.Lines {
			product, err := r.Products.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			orderLines = append(orderLines, models.OrderLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price, // Price snapshot, frozen from here on
			})
			total += product.Price * float64(line.Quantity)
		}

		cleared, err := r.Carts.ClearLines(cartID)
		if err != nil {
			return err
		}
		if cleared == 0 {
			// A concurrent checkout consumed the basket first.
			return apperrors.Conflict("cart %s is empty, nothing to check out", cartID)
		}

		order = &models.Order{
			UserID:  cart.UserID,
			Address: address,
			Lines:   orderLines,
			Total:   total,
			Status:  models.StatusPending,
		}
		return r.Orders.Create(order)
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)

	return order, nil
}

// publishOrderCreated emits the order.created event. Publishing is best
// effort; a broker failure is logged and does not fail the checkout.
func (s *CartService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order to JSON: %v", err)
		return
	}
	if err := s.mqClient.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Successfully published order created event for order %s", order.ID)
}
