package dto

import "time"

// CreateDepositRequest registers a pending top-up.
type CreateDepositRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
	ReceiptURL string `json:"receipt_url"`
}

// ResolveDepositRequest approves or rejects a pending top-up.
type ResolveDepositRequest struct {
	DepositID int64  `json:"deposit_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
	AdminNote string `json:"admin_note"`
}

// DepositResponse mirrors a deposit request row.
type DepositResponse struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"user_id"`
	Amount     int64         `json:"amount"`
	ReceiptURL string        `json:"receipt_url,omitempty"`
	Status     string        `json:"status"`
	AdminNote  string        `json:"admin_note,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	User       *UserResponse `json:"user,omitempty"`
}
