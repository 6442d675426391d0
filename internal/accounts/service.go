package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/hsa-card/hsa_engine/internal/domain"
	"github.com/hsa-card/hsa_engine/internal/ledger"
	"github.com/hsa-card/hsa_engine/internal/money"
	"github.com/hsa-card/hsa_engine/internal/notification"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Service exposes account operations backed by the ledger.
type Service struct {
	ledger   ledger.Ledger
	notifier notification.Notifier
}

// NewService builds an account service instance.
func NewService(ledgerBackend ledger.Ledger, notifier notification.Notifier) *Service {
	return &Service{ledger: ledgerBackend, notifier: notifier}
}

// CreateInput captures registration data.
type CreateInput struct {
	Name        string
	PhoneNumber string
}

// Create opens a zero-balance account.
func (s *Service) Create(ctx context.Context, input CreateInput) (ledger.Account, error) {
	phone, err := normalizePhone(input.PhoneNumber)
	if err != nil {
		return ledger.Account{}, err
	}
	return s.ledger.CreateAccount(ctx, ledger.NewAccount{OwnerName: input.Name, PhoneNumber: phone})
}

// Get returns the current account snapshot.
func (s *Service) Get(ctx context.Context, accountID string) (ledger.Account, error) {
	if err := requireID(accountID); err != nil {
		return ledger.Account{}, err
	}
	return s.ledger.Account(ctx, accountID)
}

// Deposit credits amount (minor units) to the account.
func (s *Service) Deposit(ctx context.Context, accountID string, amount int64) (ledger.Account, error) {
	if err := requireID(accountID); err != nil {
		return ledger.Account{}, err
	}
	acct, err := s.ledger.Deposit(ctx, accountID, amount)
	if err != nil {
		return ledger.Account{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:      notification.KindDeposit,
			AccountID: acct.ID,
			Body:      fmt.Sprintf("Deposited %s, balance %s", money.FromMinor(amount).StringFixed(money.Scale), money.FromMinor(acct.Balance).StringFixed(money.Scale)),
		})
	}
	return acct, nil
}

// History returns the account snapshot with its applied entries.
func (s *Service) History(ctx context.Context, accountID string) (ledger.Account, []ledger.Entry, error) {
	acct, err := s.Get(ctx, accountID)
	if err != nil {
		return ledger.Account{}, nil, err
	}
	entries, err := s.ledger.Entries(ctx, accountID)
	if err != nil {
		return ledger.Account{}, nil, err
	}
	return acct, entries, nil
}

func requireID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return fmt.Errorf("%w: accountId is required", domain.ErrInvalidInput)
	}
	return nil
}

// normalizePhone strips formatting such as "(555) 123-4567". An empty number
// is allowed; anything else must carry 10 to 15 digits.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0, r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return "", fmt.Errorf("%w: phone number contains %q", domain.ErrInvalidInput, r)
		}
	}
	digits := b.String()
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return "", fmt.Errorf("%w: phone number must have %d-%d digits", domain.ErrInvalidInput, minPhoneDigits, maxPhoneDigits)
	}
	return digits, nil
}
