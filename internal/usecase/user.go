package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// UserUseCase handles Mini App user sync and lookups.
type UserUseCase struct {
	users           repository.UserRepository
	activity        repository.ActivityRepository
	adminTelegramID string
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, activity repository.ActivityRepository, adminTelegramID string) *UserUseCase {
	return &UserUseCase{users: users, activity: activity, adminTelegramID: adminTelegramID}
}

// Sync upserts the user from the Mini App profile. A fresh user gets a
// generated referral code; the admin flag is granted when the Telegram ID
// matches the configured admin and never revoked afterwards. Returns whether
// the user was newly created.
func (u *UserUseCase) Sync(ctx context.Context, profile model.UserProfile) (*model.User, bool, error) {
	profile.TelegramID = strings.TrimSpace(profile.TelegramID)
	if profile.TelegramID == "" {
		return nil, false, domainErrors.ErrInvalidInput
	}

	isAdmin := u.adminTelegramID != "" && profile.TelegramID == u.adminTelegramID

	usr, created, err := u.users.Upsert(ctx, profile, generateReferralCode(profile.TelegramID), isAdmin)
	if err != nil {
		return nil, false, err
	}

	if created {
		_ = u.activity.Log(ctx, &usr.ID, "user_registered", map[string]any{"telegram_id": usr.TelegramID})
	}

	return usr, created, nil
}

// GetByTelegramID fetches a user by their Telegram identifier.
func (u *UserUseCase) GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	telegramID = strings.TrimSpace(telegramID)
	if telegramID == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.users.GetByTelegramID(ctx, telegramID)
}

// GetByID fetches a user by internal identifier.
func (u *UserUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// AdjustBalance applies a manual admin correction. Action is "add" or
// "subtract"; subtracting below zero fails with ErrInsufficientBalance and
// nothing changes.
func (u *UserUseCase) AdjustBalance(ctx context.Context, telegramID string, amount int64, action string) (int64, error) {
	if amount <= 0 {
		return 0, domainErrors.ErrInvalidInput
	}

	usr, err := u.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return 0, err
	}

	var delta int64
	switch action {
	case "add":
		delta = amount
	case "subtract":
		delta = -amount
	default:
		return 0, domainErrors.ErrInvalidInput
	}

	balance, err := u.users.AdjustBalance(ctx, usr.ID, delta)
	if err != nil {
		return 0, err
	}

	_ = u.activity.Log(ctx, &usr.ID, "balance_adjusted", map[string]any{
		"action": action,
		"amount": amount,
	})
	return balance, nil
}

// List returns users matching the search term, most recent first.
func (u *UserUseCase) List(ctx context.Context, search string, limit int) ([]model.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return u.users.List(ctx, strings.TrimSpace(search), limit)
}

// generateReferralCode derives a shareable code from the Telegram ID tail
// plus a random suffix, e.g. REF123456A1B2.
func generateReferralCode(telegramID string) string {
	tail := telegramID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return "REF" + strings.ToUpper(tail) + suffix
}
