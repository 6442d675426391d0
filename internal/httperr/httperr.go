// Package httperr maps domain errors onto HTTP responses.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

// From converts a domain error into a *fiber.Error with the matching status.
// Unknown errors are returned as-is so the error handler reports a 500.
func From(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCardAlreadyIssued):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrIneligibleExpense):
		return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}

// BadBody reports an undecodable request body.
func BadBody(err error) error {
	return fiber.NewError(http.StatusBadRequest, domain.ErrInvalidInput.Error()+": "+err.Error())
}

// Handler renders every error as {"error": "..."}; internal errors are logged
// and replaced with a generic message.
func Handler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		} else if logger != nil {
			reqID, _ := c.Locals("X-Request-ID").(string)
			logger.Error("unhandled error",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("request_id", reqID),
				slog.Any("error", err),
			)
		}
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
