package dto

// UserStatsResponse is the Mini App home-screen counter set.
type UserStatsResponse struct {
	User            *UserResponse `json:"user"`
	Balance         int64         `json:"balance"`
	TotalSpent      int64         `json:"total_spent"`
	TotalOrders     int           `json:"total_orders"`
	CompletedOrders int           `json:"completed_orders"`
	PendingOrders   int           `json:"pending_orders"`
	ReferralCount   int           `json:"referral_count"`
	NFTCount        int           `json:"nft_count"`
}

// AdminStatsResponse is the back-office dashboard counter set.
type AdminStatsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	TotalOrders    int64 `json:"total_orders"`
	TotalRevenue   int64 `json:"total_revenue"`
	OrdersToday    int64 `json:"orders_today"`
	RevenueToday   int64 `json:"revenue_today"`
	WeeklyRevenue  int64 `json:"weekly_revenue"`
	MonthlyRevenue int64 `json:"monthly_revenue"`
}

// PublicStatsResponse is the unauthenticated storefront counter set.
type PublicStatsResponse struct {
	Users  int64   `json:"users"`
	Orders int64   `json:"orders"`
	Rating float64 `json:"rating"`
}

// TopUserResponse is one leaderboard row.
type TopUserResponse struct {
	ID         int64  `json:"id"`
	TelegramID string `json:"telegram_id"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	TotalSpent int64  `json:"total_spent"`
	PhotoURL   string `json:"photo_url,omitempty"`
}
