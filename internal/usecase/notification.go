package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// BroadcastSender fans a message out to a set of Telegram chats without
// blocking the caller.
type BroadcastSender interface {
	Broadcast(text string, chatIDs []string)
}

// NotificationUseCase manages admin broadcast messages.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	sender        BroadcastSender
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	sender BroadcastSender,
) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, users: users, sender: sender}
}

// List returns recent broadcast messages, newest first.
func (u *NotificationUseCase) List(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return u.notifications.List(ctx, limit)
}

// Create stores a draft broadcast message.
func (u *NotificationUseCase) Create(ctx context.Context, title, message, imageURL string) (*model.Notification, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.notifications.Create(ctx, title, message, imageURL)
}

// MarkSent flips the sent flag; when sendToTelegram is set the message is
// queued for delivery to every known user first.
func (u *NotificationUseCase) MarkSent(ctx context.Context, id int64, sent, sendToTelegram bool) (*model.Notification, error) {
	notification, err := u.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sendToTelegram {
		chatIDs, err := u.users.AllTelegramIDs(ctx)
		if err != nil {
			return nil, err
		}
		u.sender.Broadcast(broadcastText(notification), chatIDs)
	}

	return u.notifications.MarkSent(ctx, id, sent)
}

func broadcastText(n *model.Notification) string {
	return fmt.Sprintf("<b>%s</b>\n\n%s", n.Title, n.Message)
}
