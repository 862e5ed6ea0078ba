package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// ReferralUseCase links users by referral code and reports program stats.
type ReferralUseCase struct {
	referrals repository.ReferralRepository
	users     repository.UserRepository
	activity  repository.ActivityRepository
}

// NewReferralUseCase constructs ReferralUseCase.
func NewReferralUseCase(
	referrals repository.ReferralRepository,
	users repository.UserRepository,
	activity repository.ActivityRepository,
) *ReferralUseCase {
	return &ReferralUseCase{referrals: referrals, users: users, activity: activity}
}

// Apply redeems a referral code for the referred user. A user can be
// referred at most once, and never by themselves.
func (u *ReferralUseCase) Apply(ctx context.Context, referredID int64, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domainErrors.ErrInvalidReferralCode
	}

	referrer, err := u.users.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalidReferralCode
		}
		return err
	}
	if referrer.ID == referredID {
		return domainErrors.ErrSelfReferral
	}

	if err := u.referrals.Link(ctx, referrer.ID, referredID); err != nil {
		return err
	}

	_ = u.activity.Log(ctx, &referredID, "referral_applied", map[string]any{
		"referrer_id": referrer.ID,
		"code":        code,
	})
	return nil
}

// Stats returns the user's code, referred users and accumulated bonus.
func (u *ReferralUseCase) Stats(ctx context.Context, userID int64) (*model.ReferralStats, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := u.referrals.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &model.ReferralStats{
		ReferralCode:  usr.ReferralCode,
		Referrals:     referrals,
		ReferralCount: len(referrals),
	}
	for _, r := range referrals {
		stats.TotalBonus += r.BonusEarned
	}
	return stats, nil
}
