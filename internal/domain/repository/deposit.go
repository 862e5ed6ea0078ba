package repository

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// DepositFilter narrows deposit listings.
type DepositFilter struct {
	UserID *int64
	Status model.DepositStatus
}

// DepositRepository describes top-up request persistence and settlement.
type DepositRepository interface {
	Create(ctx context.Context, userID, amount int64, receiptURL string) (*model.DepositRequest, error)
	List(ctx context.Context, filter DepositFilter) ([]model.DepositRequest, error)
	// Resolve claims the request with a conditional pending->status transition.
	// Only a successful claim with status approved credits the user's balance
	// and cascades the referrer bonus (bonusPercent, floor division) inside
	// the same transaction. Re-resolving an already-resolved request persists
	// the note but applies no balance effect. claimed reports whether this call
	// won the pending->resolved transition; applied reports whether balances
	// moved (approved claims only).
	Resolve(ctx context.Context, depositID int64, status model.DepositStatus, adminNote string, bonusPercent int) (deposit *model.DepositRequest, claimed, applied bool, err error)
}
