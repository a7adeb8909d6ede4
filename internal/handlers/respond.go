package handlers

import (
	"log"

	"storefront/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError maps a service error to its HTTP status. Expected
// outcomes (NotFound/Forbidden/Conflict) surface their message verbatim;
// anything else is logged and answered with an opaque 500 so storage
// details never leak to the caller.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case apperrors.IsForbidden(err):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": err.Error(),
		})
	case apperrors.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
		})
	}
}
