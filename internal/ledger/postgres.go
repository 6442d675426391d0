package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

// PostgresLedger persists accounts and their entries in PostgreSQL. The row
// lock taken by SELECT ... FOR UPDATE is the per-account exclusion.
type PostgresLedger struct {
	db *pgxpool.Pool
}

// NewPostgresLedger constructs a Postgres-backed ledger implementation.
func NewPostgresLedger(db *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{db: db}
}

const accountColumns = `id, owner_name, phone_number, balance, card_issued, created_at, updated_at`

// CreateAccount inserts a new zero-balance account.
func (l *PostgresLedger) CreateAccount(ctx context.Context, input NewAccount) (Account, error) {
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
	_, err = l.db.Exec(ctx, `INSERT INTO hsa_accounts (id, owner_name, phone_number, balance, card_issued, created_at, updated_at)
        VALUES ($1, $2, $3, 0, FALSE, $4, $4)`, acct.ID, acct.OwnerName, acct.PhoneNumber, now)
	if err != nil {
		return Account{}, fmt.Errorf("insert account: %w", err)
	}
	return acct, nil
}

// Account fetches a snapshot without locking.
func (l *PostgresLedger) Account(ctx context.Context, id string) (Account, error) {
	row := l.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM hsa_accounts WHERE id = $1`, id)
	return scanAccount(row, id)
}

// Deposit credits the account and records a deposit entry in one transaction.
func (l *PostgresLedger) Deposit(ctx context.Context, id string, amount int64) (Account, error) {
	if err := validateAmount(amount); err != nil {
		return Account{}, err
	}
	return l.mutate(ctx, id, func(acct Account) (int64, string, error) {
		if acct.Balance > math.MaxInt64-amount {
			return 0, "", fmt.Errorf("%w: balance would overflow", domain.ErrInvalidAmount)
		}
		return amount, EntryKindDeposit, nil
	}, "")
}

// Debit subtracts amount when the locked balance covers it.
func (l *PostgresLedger) Debit(ctx context.Context, id string, amount int64, memo string) (Account, error) {
	if err := validateAmount(amount); err != nil {
		return Account{}, err
	}
	return l.mutate(ctx, id, func(acct Account) (int64, string, error) {
		if acct.Balance < amount {
			return 0, "", domain.ErrInsufficientFunds
		}
		return -amount, EntryKindDebit, nil
	}, memo)
}

// MarkCardIssued flips card_issued once. The conditional update is atomic on its own.
func (l *PostgresLedger) MarkCardIssued(ctx context.Context, id string) (Account, error) {
	row := l.db.QueryRow(ctx, `UPDATE hsa_accounts SET card_issued = TRUE, updated_at = $2
        WHERE id = $1 AND card_issued = FALSE
        RETURNING `+accountColumns, id, time.Now().UTC())
	acct, err := scanAccount(row, id)
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return Account{}, err
	}
	// No row updated: either unknown or already issued.
	if _, lookupErr := l.Account(ctx, id); lookupErr != nil {
		return Account{}, lookupErr
	}
	return Account{}, domain.ErrCardAlreadyIssued
}

// Entries lists the account's entries oldest first.
func (l *PostgresLedger) Entries(ctx context.Context, id string) ([]Entry, error) {
	if _, err := l.Account(ctx, id); err != nil {
		return nil, err
	}
	rows, err := l.db.Query(ctx, `SELECT id, account_id, kind, amount, balance_after, memo, created_at
        FROM hsa_entries WHERE account_id = $1 ORDER BY created_at, seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			entryID uuid.UUID
		)
		if err := rows.Scan(&entryID, &e.AccountID, &e.Kind, &e.Amount, &e.BalanceAfter, &e.Memo, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.ID = entryID.String()
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// mutate locks the account row, asks decide for the signed delta, then
// applies it together with its entry. Any error rolls everything back.
func (l *PostgresLedger) mutate(ctx context.Context, id string, decide func(Account) (int64, string, error), memo string) (Account, error) {
	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Account{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	acct, err := scanAccount(tx.QueryRow(ctx, `SELECT `+accountColumns+` FROM hsa_accounts WHERE id = $1 FOR UPDATE`, id), id)
	if err != nil {
		return Account{}, err
	}

	delta, kind, err := decide(acct)
	if err != nil {
		return Account{}, err
	}

	now := time.Now().UTC()
	acct.Balance += delta
	acct.UpdatedAt = now
	if _, err := tx.Exec(ctx, `UPDATE hsa_accounts SET balance = $2, updated_at = $3 WHERE id = $1`, id, acct.Balance, now); err != nil {
		return Account{}, err
	}

	amount := delta
	if amount < 0 {
		amount = -amount
	}
	if _, err := tx.Exec(ctx, `INSERT INTO hsa_entries (id, account_id, kind, amount, balance_after, memo, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`, uuid.New(), id, kind, amount, acct.Balance, memo, now); err != nil {
		return Account{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Account{}, err
	}
	return acct, nil
}

func scanAccount(row pgx.Row, id string) (Account, error) {
	var acct Account
	if err := row.Scan(&acct.ID, &acct.OwnerName, &acct.PhoneNumber, &acct.Balance, &acct.CardIssued, &acct.CreatedAt, &acct.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, notFound(id)
		}
		return Account{}, err
	}
	acct.CreatedAt = acct.CreatedAt.UTC()
	acct.UpdatedAt = acct.UpdatedAt.UTC()
	return acct, nil
}

var _ Ledger = (*PostgresLedger)(nil)
