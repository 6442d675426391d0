package accounts

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/httperr"
	"github.com/hsa-card/hsa_engine/internal/money"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/create-account.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadBody(err)
	}
	acct, err := h.service.Create(c.UserContext(), CreateInput{Name: req.Name, PhoneNumber: req.PhoneNumber})
	if err != nil {
		return httperr.From(err)
	}
	return c.Status(http.StatusCreated).JSON(NewResponse(acct))
}

// Deposit handles POST /api/deposit.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadBody(err)
	}
	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		return httperr.From(err)
	}
	acct, err := h.service.Deposit(c.UserContext(), req.AccountID, amount)
	if err != nil {
		return httperr.From(err)
	}
	return c.Status(http.StatusOK).JSON(NewResponse(acct))
}

// Get handles GET /api/accounts/:accountId.
func (h *Handler) Get(c *fiber.Ctx) error {
	acct, err := h.service.Get(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return httperr.From(err)
	}
	return c.Status(http.StatusOK).JSON(NewResponse(acct))
}

// History handles GET /api/accounts/:accountId/transactions.
func (h *Handler) History(c *fiber.Ctx) error {
	acct, entries, err := h.service.History(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return httperr.From(err)
	}
	return c.Status(http.StatusOK).JSON(newHistoryResponse(acct, entries))
}
