package repository

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// ReferralRepository describes referral bindings.
type ReferralRepository interface {
	// Link sets referrer_id on the referred user and inserts the referral row
	// with zero bonus in one transaction. ErrAlreadyReferred when a binding
	// exists.
	Link(ctx context.Context, referrerID, referredID int64) error
	ListByReferrer(ctx context.Context, referrerID int64) ([]model.Referral, error)
}
