package model

import "time"

// DepositStatus describes the two-phase top-up lifecycle. Terminal once set.
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

// DepositRequest is a user-submitted, admin-resolved bank-transfer top-up.
type DepositRequest struct {
	ID         int64
	UserID     int64
	Amount     int64
	ReceiptURL string
	Status     DepositStatus
	AdminNote  string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *User
}
