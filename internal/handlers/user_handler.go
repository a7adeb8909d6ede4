package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for accounts and the admin dashboard.
type UserHandler struct {
	service   *services.UserService
	dashboard *services.DashboardService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, dashboard *services.DashboardService) *UserHandler {
	return &UserHandler{
		service:   service,
		dashboard: dashboard,
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The static
// /dashboard prefix is registered before /:id so it is not shadowed.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/dashboard/:userId", h.HandleGetDashboard)
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetDashboard returns the admin metrics snapshot.
func (h *UserHandler) HandleGetDashboard(c *fiber.Ctx) error {
	snapshot, err := h.dashboard.Snapshot(c.Params("userId"))
	if err != nil {
		return respondServiceError(c, err, "Could not build dashboard")
	}
	return c.JSON(fiber.Map{
		"dashboard": snapshot,
	})
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve users")
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve user")
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleUpdateUser updates an account's profile fields.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	existing, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve user")
	}

	var payload struct {
		Name      string `json:"name"`
		Telephone string `json:"telephone"`
	}
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing user update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if payload.Name != "" {
		existing.Name = payload.Name
	}
	if payload.Telephone != "" {
		existing.Telephone = payload.Telephone
	}

	if err := h.service.UpdateUser(existing); err != nil {
		return respondServiceError(c, err, "Could not update user")
	}
	existing.Password = ""
	return c.JSON(existing)
}

// HandleDeleteUser deletes a user by their ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.Params("id")); err != nil {
		return respondServiceError(c, err, "Could not delete user")
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
