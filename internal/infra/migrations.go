package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the ledger and card tables. Every statement is idempotent,
// so it runs on each start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS hsa_accounts (
		id TEXT PRIMARY KEY,
		owner_name TEXT NOT NULL CHECK (owner_name <> ''),
		phone_number TEXT NOT NULL DEFAULT '',
		balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
		card_issued BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS hsa_entries (
		seq BIGSERIAL,
		id UUID PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES hsa_accounts(id),
		kind TEXT NOT NULL CHECK (kind IN ('deposit', 'debit')),
		amount BIGINT NOT NULL CHECK (amount > 0),
		balance_after BIGINT NOT NULL CHECK (balance_after >= 0),
		memo TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS hsa_entries_account_idx ON hsa_entries (account_id, seq)`,

	`CREATE TABLE IF NOT EXISTS hsa_cards (
		id UUID PRIMARY KEY,
		account_id TEXT NOT NULL UNIQUE REFERENCES hsa_accounts(id),
		masked_number TEXT NOT NULL,
		last4 CHAR(4) NOT NULL,
		expiry CHAR(5) NOT NULL,
		cvv_hash BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}
