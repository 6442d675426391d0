package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/authorization"
)

// RegisterTransactionRoutes wires spend authorization.
func RegisterTransactionRoutes(r fiber.Router, h *authorization.Handler) {
	r.Post("/validate-transaction", h.Validate)
}
