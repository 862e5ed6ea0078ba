package dto

// SendMessageRequest relays an arbitrary message through the bot.
type SendMessageRequest struct {
	ChatID    string `json:"chat_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
	ParseMode string `json:"parse_mode"`
}

// SendMessageResponse confirms delivery.
type SendMessageResponse struct {
	Success bool `json:"success"`
}

// CheckSubscriptionRequest asks whether a user is in a channel.
type CheckSubscriptionRequest struct {
	UserID          int64  `json:"user_id" binding:"required"`
	ChannelUsername string `json:"channel_username" binding:"required"`
}

// CheckSubscriptionResponse reports membership.
type CheckSubscriptionResponse struct {
	Subscribed bool   `json:"subscribed"`
	Status     string `json:"status,omitempty"`
}
