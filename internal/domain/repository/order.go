package repository

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// OrderRepository describes order persistence and balance settlement.
type OrderRepository interface {
	// Place debits totalPrice from the user's balance, increments total_spent
	// and inserts the order row in one transaction. The debit is conditional
	// on sufficient balance; on shortfall nothing mutates and
	// ErrInsufficientBalance is returned.
	Place(ctx context.Context, userID, productID int64, quantity int, totalPrice int64, recipientUsername string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// ListAll returns recent orders with user and product joined; status ""
	// means no filter.
	ListAll(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	// UpdateStatus moves the order and stamps updated_at. Completing an order
	// for an NFT product grants the user_nfts row in the same transaction.
	// Balance is never re-touched.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}
