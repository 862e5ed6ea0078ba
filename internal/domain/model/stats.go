package model

// UserStats aggregates the profile view shown on the Mini App home screen.
type UserStats struct {
	User            *User
	Balance         int64
	TotalSpent      int64
	TotalOrders     int
	CompletedOrders int
	PendingOrders   int
	ReferralCount   int
	NFTCount        int
}

// AdminStats aggregates platform-wide totals for the back-office dashboard.
type AdminStats struct {
	TotalUsers     int64
	TotalOrders    int64
	TotalRevenue   int64
	OrdersToday    int64
	RevenueToday   int64
	WeeklyRevenue  int64
	MonthlyRevenue int64
}

// PublicStats is the unauthenticated storefront counter set.
type PublicStats struct {
	Users  int64
	Orders int64
	Rating float64
}

// TopUser is a leaderboard row ordered by lifetime spend.
type TopUser struct {
	ID         int64
	TelegramID string
	Username   string
	FirstName  string
	TotalSpent int64
	PhotoURL   string
}
