package dto

import "time"

// PlaceOrderRequest buys a product from the caller's balance.
type PlaceOrderRequest struct {
	TelegramID        string `json:"telegram_id" binding:"required"`
	ProductID         int64  `json:"product_id" binding:"required"`
	Quantity          int    `json:"quantity"`
	RecipientUsername string `json:"recipient_username"`
}

// UpdateOrderStatusRequest moves an order through its lifecycle.
type UpdateOrderStatusRequest struct {
	OrderID int64  `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// OrderResponse mirrors an order row with joined product and user context.
type OrderResponse struct {
	ID                int64            `json:"id"`
	UserID            int64            `json:"user_id"`
	ProductID         int64            `json:"product_id"`
	RecipientUsername string           `json:"recipient_username,omitempty"`
	Quantity          int              `json:"quantity"`
	TotalPrice        int64            `json:"total_price"`
	Status            string           `json:"status"`
	PaymentMethod     string           `json:"payment_method,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Product           *ProductResponse `json:"product,omitempty"`
	User              *UserResponse    `json:"user,omitempty"`
}
