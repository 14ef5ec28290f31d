package handlers

import (
	"errors"
	"log"

	"github.com/anyango5/cooking_class/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps the service-layer error taxonomy onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyBooked),
		errors.Is(err, services.ErrAlreadyCancelled),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrClassFull):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("🔥 Unexpected service error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}
