// Package notify delivers estimate confirmations to customers.
package notify

import (
	"context"

	"go.uber.org/zap"

	"soffit-quote/domain"
)

// Notifier sends a submitted estimate to the customer.
type Notifier interface {
	NotifyEstimate(ctx context.Context, sub domain.Submission) error
}

// LogNotifier only logs; used when SMTP is not configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyEstimate(_ context.Context, sub domain.Submission) error {
	n.logger.Info("estimate notification (smtp disabled)",
		zap.String("submission_id", sub.ID),
		zap.String("email", sub.Email),
		zap.Float64("total_price", sub.TotalPrice),
	)
	return nil
}
