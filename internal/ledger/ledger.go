package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

const (
	// EntryKindDeposit records a credit to the account.
	EntryKindDeposit = "deposit"
	// EntryKindDebit records an approved spend.
	EntryKindDebit = "debit"

	accountIDPrefix = "hsa-"
)

// NewAccount captures the data needed to open an account.
type NewAccount struct {
	OwnerName   string
	PhoneNumber string
}

// Ledger is the sole writer of account balances and card-issuance flags.
// Mutations on one account are linearizable; accounts never contend with each other.
type Ledger interface {
	CreateAccount(ctx context.Context, input NewAccount) (Account, error)
	Account(ctx context.Context, id string) (Account, error)
	Deposit(ctx context.Context, id string, amount int64) (Account, error)
	Debit(ctx context.Context, id string, amount int64, memo string) (Account, error)
	MarkCardIssued(ctx context.Context, id string) (Account, error)
	Entries(ctx context.Context, id string) ([]Entry, error)
}

func newAccountID() string {
	return accountIDPrefix + uuid.NewString()
}

func validateNewAccount(input NewAccount) (NewAccount, error) {
	input.OwnerName = strings.TrimSpace(input.OwnerName)
	if input.OwnerName == "" {
		return NewAccount{}, fmt.Errorf("%w: owner name is required", domain.ErrInvalidInput)
	}
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	return input, nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidAmount)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}
