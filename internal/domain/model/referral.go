package model

import "time"

// Referral binds a referred user to their referrer. Created once when a code
// is redeemed; BonusEarned only ever grows.
type Referral struct {
	ID          int64
	ReferrerID  int64
	ReferredID  int64
	BonusEarned int64
	CreatedAt   time.Time

	ReferredUser *User
}

// ReferralStats aggregates a user's referral program view.
type ReferralStats struct {
	ReferralCode  string
	Referrals     []Referral
	TotalBonus    int64
	ReferralCount int
}
