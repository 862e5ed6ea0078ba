package repository

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// NotificationRepository describes broadcast message persistence.
type NotificationRepository interface {
	List(ctx context.Context, limit int) ([]model.Notification, error)
	GetByID(ctx context.Context, id int64) (*model.Notification, error)
	Create(ctx context.Context, title, message, imageURL string) (*model.Notification, error)
	MarkSent(ctx context.Context, id int64, sent bool) (*model.Notification, error)
}

// CardRepository describes admin bank card persistence.
type CardRepository interface {
	List(ctx context.Context) ([]model.AdminCard, error)
	Create(ctx context.Context, cardNumber, cardHolder, bankName string) (*model.AdminCard, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// ActivityRepository records the best-effort audit trail.
type ActivityRepository interface {
	Log(ctx context.Context, userID *int64, action string, details map[string]any) error
}
