package handlers

import (
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles HTTP requests for contact messages.
type MessageHandler struct {
	service  *services.MessageService
	validate *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the message routes with the Fiber app.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Get("/", h.HandleGetMessages)
	messageRoutes.Get("/:id", h.HandleGetMessageByID)
	messageRoutes.Post("/", h.HandleCreateMessage)
	messageRoutes.Delete("/:id", h.HandleDeleteMessage)
}

// HandleGetMessages retrieves all messages.
func (h *MessageHandler) HandleGetMessages(c *fiber.Ctx) error {
	messages, err := h.service.GetAllMessages()
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve messages")
	}
	return c.JSON(messages)
}

// HandleGetMessageByID retrieves a single message by its ID.
func (h *MessageHandler) HandleGetMessageByID(c *fiber.Ctx) error {
	message, err := h.service.GetMessageByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err, "Could not retrieve message")
	}
	return c.JSON(message)
}

// HandleCreateMessage stores a new contact message.
func (h *MessageHandler) HandleCreateMessage(c *fiber.Ctx) error {
	var message models.Message
	if err := c.BodyParser(&message); err != nil {
		log.Printf("Error parsing message request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(message); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateMessage(&message); err != nil {
		return respondServiceError(c, err, "Could not create message")
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleDeleteMessage deletes a message by its ID.
func (h *MessageHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	if err := h.service.DeleteMessage(c.Params("id")); err != nil {
		return respondServiceError(c, err, "Could not delete message")
	}
	return c.JSON(fiber.Map{
		"message": "Message deleted successfully",
	})
}
