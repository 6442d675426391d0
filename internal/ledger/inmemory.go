package ledger

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

// accountCell owns one account. Its mutex is the account's exclusion; the
// ledger-level lock only guards map membership.
type accountCell struct {
	mu      sync.Mutex
	account Account
	entries []Entry
}

type inMemoryLedger struct {
	mu       sync.RWMutex
	accounts map[string]*accountCell
}

// NewInMemory creates a concurrency-safe in-memory ledger.
func NewInMemory() Ledger {
	return &inMemoryLedger{accounts: make(map[string]*accountCell)}
}

func (l *inMemoryLedger) cell(id string) (*accountCell, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.accounts[id]
	if !ok {
		return nil, notFound(id)
	}
	return c, nil
}

func (l *inMemoryLedger) CreateAccount(_ context.Context, input NewAccount) (Account, error) {
	input, err := validateNewAccount(input)
	if err != nil {
		return Account{}, err
	}
	now := time.Now().UTC()
	acct := Account{
		ID:          newAccountID(),
		OwnerName:   input.OwnerName,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[acct.ID] = &accountCell{account: acct}
	return acct, nil
}

func (l *inMemoryLedger) Account(_ context.Context, id string) (Account, error) {
	c, err := l.cell(id)
	if err != nil {
		return Account{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.account, nil
}

func (l *inMemoryLedger) Deposit(_ context.Context, id string, amount int64) (Account, error) {
	if err := validateAmount(amount); err != nil {
		return Account{}, err
	}
	c, err := l.cell(id)
	if err != nil {
		return Account{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.account.Balance > math.MaxInt64-amount {
		return Account{}, fmt.Errorf("%w: balance would overflow", domain.ErrInvalidAmount)
	}
	c.apply(EntryKindDeposit, amount, "")
	return c.account, nil
}

func (l *inMemoryLedger) Debit(_ context.Context, id string, amount int64, memo string) (Account, error) {
	if err := validateAmount(amount); err != nil {
		return Account{}, err
	}
	c, err := l.cell(id)
	if err != nil {
		return Account{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.account.Balance < amount {
		return Account{}, domain.ErrInsufficientFunds
	}
	c.apply(EntryKindDebit, -amount, memo)
	return c.account, nil
}

func (l *inMemoryLedger) MarkCardIssued(_ context.Context, id string) (Account, error) {
	c, err := l.cell(id)
	if err != nil {
		return Account{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.account.CardIssued {
		return Account{}, domain.ErrCardAlreadyIssued
	}
	c.account.CardIssued = true
	c.account.UpdatedAt = time.Now().UTC()
	return c.account, nil
}

func (l *inMemoryLedger) Entries(_ context.Context, id string) ([]Entry, error) {
	c, err := l.cell(id)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out, nil
}

// apply must be called with c.mu held. delta is signed; the entry stores its magnitude.
func (c *accountCell) apply(kind string, delta int64, memo string) {
	now := time.Now().UTC()
	c.account.Balance += delta
	c.account.UpdatedAt = now

	amount := delta
	if amount < 0 {
		amount = -amount
	}
	c.entries = append(c.entries, Entry{
		ID:           uuid.NewString(),
		AccountID:    c.account.ID,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: c.account.Balance,
		Memo:         memo,
		CreatedAt:    now,
	})
}
