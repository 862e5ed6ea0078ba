package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
	"github.com/arzonstar/storefront/internal/notifier"
)

// OrderUseCase encapsulates the purchase lifecycle: balance-settled placement
// and operator-driven status transitions.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	activity repository.ActivityRepository
	notify   notifier.Notifier
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	activity repository.ActivityRepository,
	notify notifier.Notifier,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, activity: activity, notify: notify}
}

// Place buys quantity units of the product from the buyer's balance. The total
// is computed server-side from the current catalog price. Insufficient funds
// surface as ErrInsufficientBalance with nothing written.
func (u *OrderUseCase) Place(ctx context.Context, buyer *model.User, productID int64, quantity int, recipientUsername string) (*model.Order, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domainErrors.ErrNotFound
	}

	total := product.Price * int64(quantity)
	recipientUsername = strings.TrimPrefix(strings.TrimSpace(recipientUsername), "@")

	order, err := u.orders.Place(ctx, buyer.ID, productID, quantity, total, recipientUsername)
	if err != nil {
		return nil, err
	}
	// Placement returns the bare row; the channel message needs the catalog
	// item and the buyer handle.
	order.Product = product
	order.User = buyer

	_ = u.activity.Log(ctx, &buyer.ID, "order_placed", map[string]any{
		"order_id":   order.ID,
		"product_id": productID,
		"total":      total,
	})
	u.notify.OrderPlaced(ctx, order)

	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns recent orders across users for the back office; status ""
// disables filtering.
func (u *OrderUseCase) ListAll(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if status != "" && !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidInput
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return u.orders.ListAll(ctx, status, limit)
}

// UpdateStatus moves an order through its lifecycle. Cancelling or refunding
// never restores balance; completing an NFT order grants ownership.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidInput
	}

	order, err := u.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	_ = u.activity.Log(ctx, nil, "order_status_updated", map[string]any{
		"order_id":   orderID,
		"new_status": string(status),
	})
	u.notify.OrderStatusChanged(ctx, order)

	return order, nil
}
