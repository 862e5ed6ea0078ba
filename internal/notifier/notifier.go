package notifier

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// Notifier pushes storefront events to Telegram. Event methods are
// fire-and-forget: delivery failures are logged, never propagated, so a
// broken bot cannot fail an order or a deposit.
type Notifier interface {
	OrderPlaced(ctx context.Context, order *model.Order)
	OrderStatusChanged(ctx context.Context, order *model.Order)
	DepositCreated(ctx context.Context, deposit *model.DepositRequest)
	DepositResolved(ctx context.Context, deposit *model.DepositRequest)

	// Send delivers an arbitrary message to a chat ID or @channel username.
	Send(ctx context.Context, chat, text, parseMode string) error
	// CheckSubscription reports whether the user is a member of the channel.
	CheckSubscription(ctx context.Context, userID int64, channel string) (bool, string, error)
}
