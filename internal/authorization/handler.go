package authorization

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/domain"
	"github.com/hsa-card/hsa_engine/internal/httperr"
	"github.com/hsa-card/hsa_engine/internal/money"
)

// Handler exposes the transaction validation endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs an authorization handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Validate handles POST /api/validate-transaction. Declines are 200 responses.
func (h *Handler) Validate(c *fiber.Ctx) error {
	var req validateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadBody(err)
	}
	amount, err := money.ToMinor(req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			err = fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return httperr.From(err)
	}

	res, err := h.service.Authorize(c.UserContext(), Request{
		AccountID:           req.AccountID,
		Amount:              amount,
		MerchantDescription: req.Merchant,
	})
	if err != nil {
		return httperr.From(err)
	}

	out := validateResponse{Approved: res.Approved, Message: res.Message}
	if res.Approved {
		balance := money.Float(res.NewBalance)
		out.NewBalance = &balance
	} else {
		out.Reason = res.Reason
	}
	return c.Status(http.StatusOK).JSON(out)
}
