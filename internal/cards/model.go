package cards

import "time"

// Card is the stored, display-safe view of a virtual card.
type Card struct {
	ID           string
	AccountID    string
	MaskedNumber string
	Last4        string
	Expiry       string
	CVVHash      []byte
	CreatedAt    time.Time
}

// IssuedCard is returned once, at issuance, with the full number and CVV.
type IssuedCard struct {
	Card
	Number string
	CVV    string
}
