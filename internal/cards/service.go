package cards

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hsa-card/hsa_engine/internal/ledger"
	"github.com/hsa-card/hsa_engine/internal/notification"
)

// Service issues virtual cards. The one-card-per-account rule lives in the
// ledger's MarkCardIssued; this service only produces and stores card data.
type Service struct {
	ledger    ledger.Ledger
	repo      Repository
	generator Generator
	notifier  notification.Notifier
}

// NewService builds a card issuer. A nil generator falls back to a Visa-style
// random generator valid for three years.
func NewService(ledgerBackend ledger.Ledger, repo Repository, generator Generator, notifier notification.Notifier) (*Service, error) {
	if ledgerBackend == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	if repo == nil {
		return nil, fmt.Errorf("card repository is required")
	}
	if generator == nil {
		g, err := NewRandomGenerator("4", 3)
		if err != nil {
			return nil, err
		}
		generator = g
	}
	return &Service{ledger: ledgerBackend, repo: repo, generator: generator, notifier: notifier}, nil
}

// Issue flips the account's card flag, then generates and stores the card.
// NotFound and CardAlreadyIssued from the ledger are returned unchanged.
func (s *Service) Issue(ctx context.Context, accountID string) (IssuedCard, ledger.Account, error) {
	acct, err := s.ledger.MarkCardIssued(ctx, accountID)
	if err != nil {
		return IssuedCard{}, ledger.Account{}, err
	}

	now := time.Now().UTC()
	data, err := s.generator.Generate(now)
	if err != nil {
		return IssuedCard{}, ledger.Account{}, fmt.Errorf("generate card: %w", err)
	}
	cvvHash, err := bcrypt.GenerateFromPassword([]byte(data.CVV), bcrypt.DefaultCost)
	if err != nil {
		return IssuedCard{}, ledger.Account{}, fmt.Errorf("hash cvv: %w", err)
	}

	masked, last4 := maskPAN(data.Number)
	card := Card{
		ID:           uuid.NewString(),
		AccountID:    acct.ID,
		MaskedNumber: masked,
		Last4:        last4,
		Expiry:       data.Expiry,
		CVVHash:      cvvHash,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return IssuedCard{}, ledger.Account{}, fmt.Errorf("store card: %w", err)
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:      notification.KindCardIssued,
			AccountID: acct.ID,
			Body:      fmt.Sprintf("Virtual card %s issued, expires %s", masked, card.Expiry),
		})
	}

	return IssuedCard{Card: card, Number: data.Number, CVV: data.CVV}, acct, nil
}

// Get returns the stored card for an account.
func (s *Service) Get(ctx context.Context, accountID string) (Card, error) {
	if _, err := s.ledger.Account(ctx, accountID); err != nil {
		return Card{}, err
	}
	return s.repo.GetByAccount(ctx, accountID)
}

// VerifyCVV reports whether cvv matches the stored hash.
func VerifyCVV(card Card, cvv string) bool {
	return bcrypt.CompareHashAndPassword(card.CVVHash, []byte(cvv)) == nil
}
