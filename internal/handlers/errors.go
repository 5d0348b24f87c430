package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/loan-approval/internal/services"
)

// statusFor maps a prediction error onto the HTTP status it should surface as.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingField), errors.Is(err, services.ErrInvalidField):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrSchemaMismatch):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
