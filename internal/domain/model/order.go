package model

import "time"

// OrderStatus describes the operator-driven order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Order is a purchase paid from the user's balance. TotalPrice is snapshotted
// at placement and does not track later product price edits.
type Order struct {
	ID                int64
	UserID            int64
	ProductID         int64
	RecipientUsername string
	Quantity          int
	TotalPrice        int64
	Status            OrderStatus
	PaymentMethod     string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Product *Product
	User    *User
}
