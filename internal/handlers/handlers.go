package handlers

import (
	"errors"

	"quitq/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps domain errors to HTTP status codes. Anything unrecognized
// is treated as an internal error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrCartEmpty),
		errors.Is(err, models.ErrInvalidPaymentMethod),
		errors.Is(err, models.ErrInvalidOrderStatus),
		errors.Is(err, models.ErrInsufficientStock):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
