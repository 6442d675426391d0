package authorization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hsa-card/hsa_engine/internal/domain"
	"github.com/hsa-card/hsa_engine/internal/eligibility"
	"github.com/hsa-card/hsa_engine/internal/ledger"
	"github.com/hsa-card/hsa_engine/internal/money"
	"github.com/hsa-card/hsa_engine/internal/notification"
)

// Decline reasons returned as data on a declined transaction.
const (
	ReasonIneligibleExpense = "INELIGIBLE_EXPENSE"
	ReasonInsufficientFunds = "INSUFFICIENT_FUNDS"
)

// Request is a spend against an account. Amount is in minor units.
type Request struct {
	AccountID           string
	Amount              int64
	MerchantDescription string
}

// Result is the authorization outcome. NewBalance is meaningful only when
// Approved; Reason only when declined.
type Result struct {
	Approved   bool
	NewBalance int64
	Reason     string
	Message    string
}

// Service approves or declines spends against HSA balances.
type Service struct {
	ledger     ledger.Ledger
	classifier eligibility.Classifier
	notifier   notification.Notifier
}

// NewService constructs an authorizer.
func NewService(ledgerBackend ledger.Ledger, classifier eligibility.Classifier, notifier notification.Notifier) *Service {
	if classifier == nil {
		classifier = eligibility.NewKeywordClassifier(nil)
	}
	return &Service{ledger: ledgerBackend, classifier: classifier, notifier: notifier}
}

// Authorize validates the request, checks eligibility, then debits. Declines
// are returned in Result with a nil error; only malformed input and unknown
// accounts produce errors. A declined request never changes the balance.
func (s *Service) Authorize(ctx context.Context, req Request) (Result, error) {
	merchant := strings.TrimSpace(req.MerchantDescription)
	if strings.TrimSpace(req.AccountID) == "" {
		return Result{}, fmt.Errorf("%w: accountId is required", domain.ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return Result{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	if merchant == "" {
		return Result{}, fmt.Errorf("%w: merchant is required", domain.ErrInvalidInput)
	}

	if _, err := s.ledger.Account(ctx, req.AccountID); err != nil {
		return Result{}, err
	}

	if !s.classifier.IsEligible(merchant) {
		res := Result{
			Reason:  ReasonIneligibleExpense,
			Message: fmt.Sprintf("%s is not a qualified medical expense.", merchant),
		}
		s.notify(ctx, req.AccountID, res)
		return res, nil
	}

	acct, err := s.ledger.Debit(ctx, req.AccountID, req.Amount, merchant)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			res := Result{Reason: ReasonInsufficientFunds, Message: "Insufficient funds"}
			s.notify(ctx, req.AccountID, res)
			return res, nil
		}
		return Result{}, err
	}

	res := Result{Approved: true, NewBalance: acct.Balance, Message: "Transaction approved!"}
	s.notify(ctx, req.AccountID, res)
	return res, nil
}

func (s *Service) notify(ctx context.Context, accountID string, res Result) {
	if s.notifier == nil {
		return
	}
	msg := notification.Message{AccountID: accountID}
	if res.Approved {
		msg.Kind = notification.KindTransactionApproved
		msg.Body = fmt.Sprintf("Approved, balance %s", money.FromMinor(res.NewBalance).StringFixed(money.Scale))
	} else {
		msg.Kind = notification.KindTransactionDeclined
		msg.Body = res.Reason
	}
	_ = s.notifier.Send(ctx, msg)
}
