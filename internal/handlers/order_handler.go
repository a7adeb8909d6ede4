package handlers

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/user/:userId", h.HandleGetOrdersByUser)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)

	adminRoutes := router.Group("/order/admin")
	adminRoutes.Get("/:adminId", h.HandleGetOrdersByAdmin)
	adminRoutes.Put("/:adminId/:orderId/status", h.HandleUpdateOrderStatus)
	adminRoutes.Patch("/:adminId/:orderId", h.HandleUpdateOrderAddress)
	adminRoutes.Delete("/:adminId/:orderId", h.HandleDeleteOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrdersByUser retrieves all orders of one account.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByUserID(c.Params("userId"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleGetOrdersByAdmin lists every order for an administrator.
func (h *OrderHandler) HandleGetOrdersByAdmin(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrdersByAdmin(c.Params("adminId"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus transitions an order's lifecycle status. This is
// the only route that can change an order's status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	status := models.OrderStatus(updateData.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status must be one of PENDING, COMPLETED, CANCELED",
		})
	}

	order, err := h.service.UpdateStatus(c.Params("adminId"), c.Params("orderId"), status)
	if err != nil {
		return respondServiceError(c, err, "Could not update order status")
	}
	return c.JSON(order)
}

// HandleUpdateOrderAddress changes the delivery address of an order.
func (h *OrderHandler) HandleUpdateOrderAddress(c *fiber.Ctx) error {
	var updateData struct {
		Address string `json:"address"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for order update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for order update",
			"error":   err.Error(),
		})
	}
	if updateData.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An address is required for order update",
		})
	}

	order, err := h.service.UpdateAddressByAdmin(c.Params("adminId"), c.Params("orderId"), updateData.Address)
	if err != nil {
		return respondServiceError(c, err, "Could not update order")
	}
	return c.JSON(order)
}

// HandleDeleteOrder removes an order record entirely.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.service.DeleteOrderByAdmin(c.Params("adminId"), c.Params("orderId")); err != nil {
		return respondServiceError(c, err, "Could not delete order")
	}
	return c.JSON(fiber.Map{
		"message": "Order deleted successfully",
	})
}
