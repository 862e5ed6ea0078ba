package model

import "time"

// Notification is an admin-authored broadcast message.
type Notification struct {
	ID        int64
	Title     string
	Message   string
	ImageURL  string
	IsSent    bool
	SentAt    *time.Time
	CreatedAt time.Time
}

// AdminCard is a bank card shown to users for manual top-up transfers.
type AdminCard struct {
	ID         int64
	CardNumber string
	CardHolder string
	BankName   string
	IsActive   bool
	CreatedAt  time.Time
}

// UserNFT records NFT ownership granted by a completed order.
type UserNFT struct {
	ID           int64
	UserID       int64
	NFTName      string
	NFTImage     string
	OrderID      *int64
	PurchaseDate time.Time
}

// ActivityLog is a best-effort audit trail entry.
type ActivityLog struct {
	ID        int64
	UserID    *int64
	Action    string
	Details   map[string]any
	CreatedAt time.Time
}
