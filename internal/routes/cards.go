package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/cards"
)

// RegisterCardRoutes wires virtual card issuance and lookup.
func RegisterCardRoutes(r fiber.Router, h *cards.Handler) {
	r.Post("/issue-card", h.Issue)
	r.Get("/accounts/:accountId/card", h.Get)
}
