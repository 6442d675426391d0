package notification

import (
	"context"
	"log/slog"
)

const (
	// KindDeposit is sent after funds are credited.
	KindDeposit = "deposit"
	// KindCardIssued is sent after a virtual card is issued.
	KindCardIssued = "card_issued"
	// KindTransactionApproved is sent after an approved spend is debited.
	KindTransactionApproved = "transaction_approved"
	// KindTransactionDeclined is sent when a spend is declined.
	KindTransactionDeclined = "transaction_declined"
)

// Message describes a notification payload.
type Message struct {
	Kind      string
	AccountID string
	Body      string
}

// Notifier delivers account events to downstream systems. Delivery failures
// never undo the ledger change that triggered them.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(ctx context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.InfoContext(ctx, "notification",
		slog.String("kind", message.Kind),
		slog.String("account_id", message.AccountID),
		slog.String("body", message.Body),
	)
	return nil
}
