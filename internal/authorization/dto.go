package authorization

import "github.com/shopspring/decimal"

type validateRequest struct {
	AccountID string          `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
	Merchant  string          `json:"merchant"`
}

type validateResponse struct {
	Approved   bool     `json:"approved"`
	NewBalance *float64 `json:"new_balance,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Message    string   `json:"message,omitempty"`
}
