package cards

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/accounts"
	"github.com/hsa-card/hsa_engine/internal/domain"
	"github.com/hsa-card/hsa_engine/internal/httperr"
)

// Handler exposes virtual card endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a card handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Issue handles POST /api/issue-card.
func (h *Handler) Issue(c *fiber.Ctx) error {
	var req issueRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadBody(err)
	}
	if strings.TrimSpace(req.AccountID) == "" {
		return httperr.From(fmt.Errorf("%w: accountId is required", domain.ErrInvalidInput))
	}

	issued, acct, err := h.service.Issue(c.UserContext(), req.AccountID)
	if err != nil {
		return httperr.From(err)
	}
	return c.Status(http.StatusCreated).JSON(issueResponse{
		Card: issuedCardResponse{
			CardID:        issued.ID,
			CardNumber:    issued.Number,
			MaskedNumber:  issued.MaskedNumber,
			CVV:           issued.CVV,
			Expiry:        issued.Expiry,
			LinkedAccount: issued.AccountID,
		},
		Account: accounts.NewResponse(acct),
	})
}

// Get handles GET /api/accounts/:accountId/card.
func (h *Handler) Get(c *fiber.Ctx) error {
	card, err := h.service.Get(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return httperr.From(err)
	}
	return c.Status(http.StatusOK).JSON(cardResponse{
		CardID:        card.ID,
		MaskedNumber:  card.MaskedNumber,
		Expiry:        card.Expiry,
		LinkedAccount: card.AccountID,
		IssuedAt:      card.CreatedAt,
	})
}
