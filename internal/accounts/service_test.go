package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/hsa-card/hsa_engine/internal/domain"
	"github.com/hsa-card/hsa_engine/internal/ledger"
	"github.com/hsa-card/hsa_engine/internal/notification"
)

type testNotifier struct {
	sent []notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.sent = append(n.sent, msg)
	return nil
}

func TestServiceCreateAndDeposit(t *testing.T) {
	led := ledger.NewInMemory()
	notifier := &testNotifier{}
	svc := NewService(led, notifier)
	ctx := context.Background()

	acct, err := svc.Create(ctx, CreateInput{Name: "Jane Doe", PhoneNumber: "(555) 123-4567"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if acct.Balance != 0 || acct.CardIssued {
		t.Fatalf("unexpected new account: %+v", acct)
	}
	if acct.PhoneNumber != "5551234567" {
		t.Fatalf("expected normalized phone, got %q", acct.PhoneNumber)
	}

	updated, err := svc.Deposit(ctx, acct.ID, 50_000)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if updated.Balance != 50_000 {
		t.Fatalf("expected balance 50000, got %d", updated.Balance)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Kind != notification.KindDeposit {
		t.Fatalf("expected one deposit notification, got %+v", notifier.sent)
	}
	if notifier.sent[0].Body != "Deposited 500.00, balance 500.00" {
		t.Fatalf("unexpected notification body %q", notifier.sent[0].Body)
	}

	_, entries, err := svc.History(ctx, acct.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 || entries[0].Amount != 50_000 {
		t.Fatalf("unexpected history: %+v", entries)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(ledger.NewInMemory(), nil)
	ctx := context.Background()

	cases := []CreateInput{
		{Name: ""},
		{Name: "   "},
		{Name: "Jane", PhoneNumber: "123"},
		{Name: "Jane", PhoneNumber: "555-CALL-NOW"},
	}
	for _, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%+v: expected invalid input, got %v", in, err)
		}
	}

	acct, err := svc.Create(ctx, CreateInput{Name: "Jane", PhoneNumber: "+44 20 7946 0958"})
	if err != nil {
		t.Fatalf("international phone: %v", err)
	}
	if acct.PhoneNumber != "442079460958" {
		t.Fatalf("unexpected phone %q", acct.PhoneNumber)
	}
}

func TestServiceDepositErrors(t *testing.T) {
	svc := NewService(ledger.NewInMemory(), nil)
	ctx := context.Background()
	acct, _ := svc.Create(ctx, CreateInput{Name: "Jane Doe"})

	if _, err := svc.Deposit(ctx, "", 100); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty id, got %v", err)
	}
	if _, err := svc.Deposit(ctx, "hsa-unknown", 100); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	for _, amount := range []int64{0, -500} {
		if _, err := svc.Deposit(ctx, acct.ID, amount); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("deposit %d: expected invalid amount, got %v", amount, err)
		}
	}
}
