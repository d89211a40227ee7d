// error_utils.go
package utils

import (
	"errors"

	"Backend-Booking-Designer/src/errorz"
	"Backend-Booking-Designer/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errorz.ErrInvalidID), errors.Is(err, errorz.ErrInvalidCredentials):
		return fiber.StatusBadRequest
	case errors.Is(err, errorz.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleServiceError renders err with its mapped status. Unexpected errors never leak
// their text; the generic internal message is sent instead.
func HandleServiceError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		return HandleError(c, status, errorz.ErrInternal.Error())
	}
	return HandleError(c, status, err.Error())
}

// FiberErrorHandler is the app-wide fallback for errors returned by handlers.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return HandleError(c, fe.Code, fe.Message)
	}
	return HandleServiceError(c, err)
}
