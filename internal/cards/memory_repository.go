package cards

import (
	"context"
	"fmt"
	"sync"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

type memoryRepository struct {
	mu        sync.RWMutex
	byAccount map[string]Card
}

// NewMemoryRepository constructs an in-memory card store.
func NewMemoryRepository() Repository {
	return &memoryRepository{byAccount: make(map[string]Card)}
}

func (r *memoryRepository) Create(_ context.Context, card Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byAccount[card.AccountID]; exists {
		return domain.ErrCardAlreadyIssued
	}
	r.byAccount[card.AccountID] = card
	return nil
}

func (r *memoryRepository) GetByAccount(_ context.Context, accountID string) (Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.byAccount[accountID]
	if !ok {
		return Card{}, fmt.Errorf("%w: no card for %s", domain.ErrNotFound, accountID)
	}
	return card, nil
}
