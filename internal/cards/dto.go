package cards

import (
	"time"

	"github.com/hsa-card/hsa_engine/internal/accounts"
)

type issueRequest struct {
	AccountID string `json:"accountId"`
}

type issuedCardResponse struct {
	CardID        string `json:"card_id"`
	CardNumber    string `json:"card_number"`
	MaskedNumber  string `json:"masked_number"`
	CVV           string `json:"cvv"`
	Expiry        string `json:"expiry"`
	LinkedAccount string `json:"linked_account"`
}

type issueResponse struct {
	Card    issuedCardResponse `json:"card"`
	Account accounts.Response  `json:"account"`
}

type cardResponse struct {
	CardID        string    `json:"card_id"`
	MaskedNumber  string    `json:"masked_number"`
	Expiry        string    `json:"expiry"`
	LinkedAccount string    `json:"linked_account"`
	IssuedAt      time.Time `json:"issued_at"`
}
