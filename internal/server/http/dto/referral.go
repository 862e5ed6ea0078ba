package dto

import "time"

// RedeemReferralRequest binds the caller to a referral code's owner.
type RedeemReferralRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

// ReferralResponse mirrors one referred-user row.
type ReferralResponse struct {
	ID           int64         `json:"id"`
	ReferredID   int64         `json:"referred_id"`
	BonusEarned  int64         `json:"bonus_earned"`
	CreatedAt    time.Time     `json:"created_at"`
	ReferredUser *UserResponse `json:"referred_user,omitempty"`
}

// ReferralStatsResponse aggregates the caller's referral program view.
type ReferralStatsResponse struct {
	ReferralCode  string             `json:"referral_code"`
	Referrals     []ReferralResponse `json:"referrals"`
	TotalBonus    int64              `json:"total_bonus"`
	ReferralCount int                `json:"referral_count"`
}
