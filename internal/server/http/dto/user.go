package dto

import "time"

// SyncUserRequest carries the Mini App profile for upsert.
type SyncUserRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PhotoURL   string `json:"photo_url"`
}

// UserResponse mirrors the stored user row.
type UserResponse struct {
	ID           int64     `json:"id"`
	TelegramID   string    `json:"telegram_id"`
	Username     string    `json:"username,omitempty"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	Balance      int64     `json:"balance"`
	TotalSpent   int64     `json:"total_spent"`
	ReferralCode string    `json:"referral_code,omitempty"`
	ReferrerID   *int64    `json:"referrer_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// BalanceResponse is the wallet view for a Telegram ID.
type BalanceResponse struct {
	Balance    int64 `json:"balance"`
	TotalSpent int64 `json:"total_spent"`
}

// AdjustBalanceRequest applies a manual admin correction.
type AdjustBalanceRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

// AdjustBalanceResponse reports the post-adjustment balance.
type AdjustBalanceResponse struct {
	Success bool  `json:"success"`
	Balance int64 `json:"balance"`
}
