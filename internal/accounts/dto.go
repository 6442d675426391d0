package accounts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hsa-card/hsa_engine/internal/ledger"
	"github.com/hsa-card/hsa_engine/internal/money"
)

type createRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type depositRequest struct {
	AccountID string          `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
}

// Response is the JSON shape of an account shared by every endpoint.
type Response struct {
	AccountID   string    `json:"account_id"`
	OwnerName   string    `json:"owner_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Balance     float64   `json:"balance"`
	CardIssued  bool      `json:"card_issued"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewResponse renders an account snapshot.
func NewResponse(acct ledger.Account) Response {
	return Response{
		AccountID:   acct.ID,
		OwnerName:   acct.OwnerName,
		PhoneNumber: acct.PhoneNumber,
		Balance:     money.Float(acct.Balance),
		CardIssued:  acct.CardIssued,
		CreatedAt:   acct.CreatedAt,
	}
}

type entryResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Amount       float64   `json:"amount"`
	BalanceAfter float64   `json:"balance_after"`
	Memo         string    `json:"memo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type historyResponse struct {
	AccountID string          `json:"account_id"`
	Balance   float64         `json:"balance"`
	Entries   []entryResponse `json:"entries"`
}

func newHistoryResponse(acct ledger.Account, entries []ledger.Entry) historyResponse {
	out := historyResponse{
		AccountID: acct.ID,
		Balance:   money.Float(acct.Balance),
		Entries:   make([]entryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, entryResponse{
			ID:           e.ID,
			Kind:         e.Kind,
			Amount:       money.Float(e.Amount),
			BalanceAfter: money.Float(e.BalanceAfter),
			Memo:         e.Memo,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
