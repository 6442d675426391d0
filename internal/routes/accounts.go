package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/accounts"
)

// RegisterAccountRoutes wires account creation, deposits and lookups.
func RegisterAccountRoutes(r fiber.Router, h *accounts.Handler, createLimiter fiber.Handler) {
	if createLimiter != nil {
		r.Post("/create-account", createLimiter, h.Create)
	} else {
		r.Post("/create-account", h.Create)
	}
	r.Post("/deposit", h.Deposit)
	r.Get("/accounts/:accountId", h.Get)
	r.Get("/accounts/:accountId/transactions", h.History)
}
