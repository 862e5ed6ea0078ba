package model

import "time"

// User represents a storefront customer identified by their Telegram account.
type User struct {
	ID           int64
	TelegramID   string
	Username     string
	FirstName    string
	LastName     string
	PhotoURL     string
	IsSubscribed bool
	IsAdmin      bool
	Balance      int64
	TotalSpent   int64
	ReferralCode string
	ReferrerID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Handle returns the best human-readable identifier for notifications.
func (u *User) Handle() string {
	if u.Username != "" {
		return u.Username
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.TelegramID
}

// UserProfile carries the mutable profile fields delivered by the Mini App.
type UserProfile struct {
	TelegramID string
	Username   string
	FirstName  string
	LastName   string
	PhotoURL   string
}
