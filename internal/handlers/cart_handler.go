package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for carts and checkout.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. The static
// /user prefix is registered before /:id so it is not shadowed.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/user/:userId", h.HandleGetCartByUser)
	cartRoutes.Get("/:id", h.HandleGetCart)
	cartRoutes.Post("/:userId/items", h.HandleAddLine)
	cartRoutes.Post("/:cartId/checkout", h.HandleCheckout)
}

// HandleGetCart retrieves a cart with its lines by the cart's ID.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCartByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve cart")
	}
	return c.JSON(cart)
}

// HandleGetCartByUser retrieves the open cart of an account.
func (h *CartHandler) HandleGetCartByUser(c *fiber.Ctx) error {
	cart, err := h.service.GetCartByUserID(c.Params("userId"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve cart")
	}
	return c.JSON(cart)
}

// HandleAddLine appends a product line to the user's open cart.
func (h *CartHandler) HandleAddLine(c *fiber.Ctx) error {
	var payload struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,gte=1"`
	}
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing add line request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and a quantity of at least 1 are required",
		})
	}

	cart, err := h.service.AddLine(c.Params("userId"), payload.ProductID, payload.Quantity)
	if err != nil {
		return respondServiceError(c, err, "Could not add line to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// HandleCheckout converts the cart into a new PENDING order.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	var payload struct {
		Address string `json:"address" validate:"required,min=3,max=255"`
	}
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A delivery address is required for checkout",
		})
	}

	order, err := h.service.Checkout(c.Params("cartId"), payload.Address)
	if err != nil {
		return respondServiceError(c, err, "Could not check out cart")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
