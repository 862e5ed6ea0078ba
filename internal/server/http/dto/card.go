package dto

import "time"

// CreateCardRequest registers a payout card.
type CreateCardRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	CardHolder string `json:"card_holder" binding:"required"`
	BankName   string `json:"bank_name"`
}

// SetCardActiveRequest toggles card visibility in the Mini App.
type SetCardActiveRequest struct {
	CardID   int64 `json:"card_id" binding:"required"`
	IsActive bool  `json:"is_active"`
}

// CardResponse mirrors a payout card row.
type CardResponse struct {
	ID         int64     `json:"id"`
	CardNumber string    `json:"card_number"`
	CardHolder string    `json:"card_holder"`
	BankName   string    `json:"bank_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
