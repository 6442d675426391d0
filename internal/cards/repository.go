package cards

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

// Repository persists issued card metadata.
type Repository interface {
	Create(ctx context.Context, card Card) error
	GetByAccount(ctx context.Context, accountID string) (Card, error)
}

// PostgresRepository stores cards in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a card record. account_id is unique, so a second card for
// the same account fails at the database as well.
func (r *PostgresRepository) Create(ctx context.Context, card Card) error {
	cardID, err := uuid.Parse(card.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO hsa_cards (id, account_id, masked_number, last4, expiry, cvv_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`, cardID, card.AccountID, card.MaskedNumber, card.Last4, card.Expiry, card.CVVHash, card.CreatedAt.UTC())
	return err
}

// GetByAccount fetches the card issued for an account.
func (r *PostgresRepository) GetByAccount(ctx context.Context, accountID string) (Card, error) {
	row := r.db.QueryRow(ctx, `SELECT id, account_id, masked_number, last4, expiry, cvv_hash, created_at
        FROM hsa_cards WHERE account_id = $1`, accountID)
	var (
		c      Card
		cardID uuid.UUID
	)
	if err := row.Scan(&cardID, &c.AccountID, &c.MaskedNumber, &c.Last4, &c.Expiry, &c.CVVHash, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Card{}, fmt.Errorf("%w: no card for %s", domain.ErrNotFound, accountID)
		}
		return Card{}, err
	}
	c.ID = cardID.String()
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}
