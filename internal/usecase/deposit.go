package usecase

import (
	"context"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
	"github.com/arzonstar/storefront/internal/notifier"
)

// DepositUseCase handles manual bank-transfer top-ups and their settlement.
type DepositUseCase struct {
	deposits     repository.DepositRepository
	activity     repository.ActivityRepository
	notify       notifier.Notifier
	bonusPercent int
}

// NewDepositUseCase constructs DepositUseCase.
func NewDepositUseCase(
	deposits repository.DepositRepository,
	activity repository.ActivityRepository,
	notify notifier.Notifier,
	bonusPercent int,
) *DepositUseCase {
	return &DepositUseCase{deposits: deposits, activity: activity, notify: notify, bonusPercent: bonusPercent}
}

// Create registers a pending top-up request.
func (u *DepositUseCase) Create(ctx context.Context, userID, amount int64, receiptURL string) (*model.DepositRequest, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	deposit, err := u.deposits.Create(ctx, userID, amount, receiptURL)
	if err != nil {
		return nil, err
	}

	_ = u.activity.Log(ctx, &userID, "deposit_requested", map[string]any{
		"deposit_id": deposit.ID,
		"amount":     amount,
	})
	u.notify.DepositCreated(ctx, deposit)

	return deposit, nil
}

// List returns deposit requests, optionally narrowed to a user or a status.
func (u *DepositUseCase) List(ctx context.Context, filter repository.DepositFilter) ([]model.DepositRequest, error) {
	if filter.Status != "" {
		switch filter.Status {
		case model.DepositStatusPending, model.DepositStatusApproved, model.DepositStatusRejected:
		default:
			return nil, domainErrors.ErrInvalidInput
		}
	}
	return u.deposits.List(ctx, filter)
}

// Resolve approves or rejects a pending request. Approval credits the user
// and cascades the referrer bonus exactly once; re-resolving only refreshes
// the admin note.
func (u *DepositUseCase) Resolve(ctx context.Context, depositID int64, status model.DepositStatus, adminNote string) (*model.DepositRequest, error) {
	if status != model.DepositStatusApproved && status != model.DepositStatusRejected {
		return nil, domainErrors.ErrInvalidInput
	}

	deposit, claimed, applied, err := u.deposits.Resolve(ctx, depositID, status, adminNote, u.bonusPercent)
	if err != nil {
		return nil, err
	}

	// Both outcomes of the first resolution are announced; note refreshes on an
	// already-resolved request stay silent.
	if claimed {
		_ = u.activity.Log(ctx, &deposit.UserID, "deposit_resolved", map[string]any{
			"deposit_id": depositID,
			"status":     string(status),
			"amount":     deposit.Amount,
			"applied":    applied,
		})
		u.notify.DepositResolved(ctx, deposit)
	}

	return deposit, nil
}
