package repository

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	// Upsert creates the user when absent (using referralCode and isAdmin) or
	// updates profile fields when present. The admin flag is sticky: once set
	// it is never cleared by this path. Returns the stored user and whether it
	// was newly created.
	Upsert(ctx context.Context, profile model.UserProfile, referralCode string, isAdmin bool) (*model.User, bool, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByReferralCode(ctx context.Context, code string) (*model.User, error)
	List(ctx context.Context, search string, limit int) ([]model.User, error)
	AllTelegramIDs(ctx context.Context) ([]string, error)
	// AdjustBalance applies a signed delta with a non-negativity guard in a
	// single conditional statement. Returns the new balance.
	AdjustBalance(ctx context.Context, userID int64, delta int64) (int64, error)
}
