package ledger

import "time"

// Account is a value snapshot of an HSA account. Callers never hold a
// reference to the ledger's internal state.
type Account struct {
	ID          string
	OwnerName   string
	PhoneNumber string
	Balance     int64
	CardIssued  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Entry is one applied balance mutation.
type Entry struct {
	ID           string
	AccountID    string
	Kind         string
	Amount       int64
	BalanceAfter int64
	Memo         string
	CreatedAt    time.Time
}
