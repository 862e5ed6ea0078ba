package dto

import "time"

// CreateNotificationRequest stores a draft broadcast.
type CreateNotificationRequest struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	ImageURL string `json:"image_url"`
}

// MarkNotificationSentRequest flips the sent flag, optionally broadcasting to
// every user first.
type MarkNotificationSentRequest struct {
	NotificationID int64 `json:"notification_id" binding:"required"`
	IsSent         bool  `json:"is_sent"`
	SendToTelegram bool  `json:"send_to_telegram"`
}

// NotificationResponse mirrors a broadcast row.
type NotificationResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ImageURL  string     `json:"image_url,omitempty"`
	IsSent    bool       `json:"is_sent"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
