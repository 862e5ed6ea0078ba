package notifier

import (
	"context"
	"log/slog"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
)

// NoopNotifier is used when no bot token is configured. Event methods are
// silent; explicit sends and subscription checks report the notifier as
// unavailable.
type NoopNotifier struct {
	logger *slog.Logger
}

// NewNoopNotifier constructs NoopNotifier.
func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

func (n *NoopNotifier) OrderPlaced(ctx context.Context, order *model.Order)                {}
func (n *NoopNotifier) OrderStatusChanged(ctx context.Context, order *model.Order)        {}
func (n *NoopNotifier) DepositCreated(ctx context.Context, deposit *model.DepositRequest) {}
func (n *NoopNotifier) DepositResolved(ctx context.Context, deposit *model.DepositRequest) {
}

func (n *NoopNotifier) Send(ctx context.Context, chat, text, parseMode string) error {
	n.logger.Debug("telegram send skipped, bot not configured", slog.String("chat", chat))
	return domainErrors.ErrNotifierUnavailable
}

func (n *NoopNotifier) CheckSubscription(ctx context.Context, userID int64, channel string) (bool, string, error) {
	return false, "", domainErrors.ErrNotifierUnavailable
}
